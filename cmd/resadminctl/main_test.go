package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/resadmin/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_EXPIRY", "1h")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"token", "--actor", "registrar"})
	require.NoError(t, cmd.Execute())

	claims, err := auth.NewTokenManager("cli-secret", time.Hour).Validate(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "registrar", claims.Actor)
}

func TestTokenCommandRequiresActor(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"token"})
	assert.Error(t, cmd.Execute())
}

func TestMigrateArguments(t *testing.T) {
	for _, args := range [][]string{
		{"migrate", "down", "zero"},
		{"migrate", "goto", "-1"},
		{"migrate", "force", "x"},
		{"export", "project", "abc"},
	} {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), strings.Join(args, " "))
	}
}
