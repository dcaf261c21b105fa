// internal/middleware/mock_gen.go
package middleware

//go:generate mockgen -typed -source=./auth.go -destination=../mocks/mock_token_validator.go -package=mocks TokenValidator
