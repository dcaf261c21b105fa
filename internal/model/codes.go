// internal/model/codes.go
package model

import (
	"github.com/dangerclosesec/resadmin/internal/domain"
)

// Code is one entry of a closed code list.
type Code struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var codeLists = make(map[string][]Code)

// CodeLists returns every declared code list keyed by name, in declaration order.
func CodeLists() map[string][]Code {
	out := make(map[string][]Code, len(codeLists))
	for name, codes := range codeLists {
		out[name] = append([]Code(nil), codes...)
	}
	return out
}

type codeSet[T ~string] struct {
	name   string
	labels map[T]string
}

// newCodeSet registers a code list from alternating code, label pairs.
func newCodeSet[T ~string](name string, pairs ...string) *codeSet[T] {
	s := &codeSet[T]{name: name, labels: make(map[T]string, len(pairs)/2)}
	codes := make([]Code, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		s.labels[T(pairs[i])] = pairs[i+1]
		codes = append(codes, Code{Code: pairs[i], Label: pairs[i+1]})
	}
	codeLists[name] = codes
	return s
}

func (s *codeSet[T]) valid(v T) bool {
	_, ok := s.labels[v]
	return ok
}

func (s *codeSet[T]) label(v T) string {
	return s.labels[v]
}

func (s *codeSet[T]) parse(dst *T, text []byte) error {
	v := T(text)
	if !s.valid(v) {
		return domain.Invalid("", s.name, "code", string(text))
	}
	*dst = v
	return nil
}

type OrganizationType string

const (
	OrgTypeProvider   OrganizationType = "prov"
	OrgTypeUniversity OrganizationType = "univ"
	OrgTypeFaculty    OrganizationType = "fac"
	OrgTypeDepartment OrganizationType = "dept"
	OrgTypeResearch   OrganizationType = "rc"
	OrgTypeTeam       OrganizationType = "team"
	OrgTypeGovernment OrganizationType = "govt"
	OrgTypeEducation  OrganizationType = "edu"
	OrgTypeSponsor    OrganizationType = "crs"
	OrgTypeCommunity  OrganizationType = "cg"
	OrgTypeBusiness   OrganizationType = "bus"
	OrgTypeOther      OrganizationType = "other"
)

var organizationTypes = newCodeSet[OrganizationType]("organization_type",
	"prov", "Healthcare Provider",
	"univ", "University",
	"fac", "Faculty",
	"dept", "Department",
	"rc", "Research Centre",
	"team", "Organizational team",
	"govt", "Government",
	"edu", "Educational Institute",
	"crs", "Clinical Research Sponsor",
	"cg", "Community Group",
	"bus", "Non-Healthcare Business or Corporation",
	"other", "Other",
)

func (t OrganizationType) Valid() bool { return organizationTypes.valid(t) }
func (t OrganizationType) Label() string { return organizationTypes.label(t) }
func (t *OrganizationType) UnmarshalText(b []byte) error { return organizationTypes.parse(t, b) }

type OrganizationPurpose string

const (
	PurposeBilling        OrganizationPurpose = "BILL"
	PurposeAdministrative OrganizationPurpose = "ADMIN"
	PurposeResearch       OrganizationPurpose = "RES"
	PurposeEducation      OrganizationPurpose = "EDU"
	PurposeSupplier       OrganizationPurpose = "SUPP"
)

var organizationPurposes = newCodeSet[OrganizationPurpose]("organization_purpose",
	"BILL", "Billing",
	"ADMIN", "Administrative",
	"RES", "Research Centre",
	"EDU", "Education Provider",
	"SUPP", "Supplier",
)

func (p OrganizationPurpose) Valid() bool { return organizationPurposes.valid(p) }
func (p OrganizationPurpose) Label() string { return organizationPurposes.label(p) }
func (p *OrganizationPurpose) UnmarshalText(b []byte) error { return organizationPurposes.parse(p, b) }

// AddressType is shared by organization and subject addresses.
type AddressType string

const (
	AddressPostal   AddressType = "PO"
	AddressPhysical AddressType = "PH"
	AddressBoth     AddressType = "BO"
)

var addressTypes = newCodeSet[AddressType]("address_type",
	"PO", "postal",
	"PH", "physical",
	"BO", "both",
)

func (t AddressType) Valid() bool { return addressTypes.valid(t) }
func (t AddressType) Label() string { return addressTypes.label(t) }
func (t *AddressType) UnmarshalText(b []byte) error { return addressTypes.parse(t, b) }

type AddressUse string

const (
	AddressUseHome      AddressUse = "H"
	AddressUseWork      AddressUse = "W"
	AddressUseTemporary AddressUse = "T"
	AddressUseOld       AddressUse = "O"
	AddressUseBilling   AddressUse = "B"
)

var addressUses = newCodeSet[AddressUse]("address_use",
	"H", "home",
	"W", "work",
	"T", "temporary",
	"O", "old",
	"B", "billing",
)

func (u AddressUse) Valid() bool { return addressUses.valid(u) }
func (u AddressUse) Label() string { return addressUses.label(u) }
func (u *AddressUse) UnmarshalText(b []byte) error { return addressUses.parse(u, b) }

type Sex string

const (
	SexMale    Sex = "M"
	SexFemale  Sex = "F"
	SexUnknown Sex = "U"
)

var sexes = newCodeSet[Sex]("sex",
	"M", "Male",
	"F", "Female",
	"U", "Unknown",
)

func (s Sex) Valid() bool { return sexes.valid(s) }
func (s Sex) Label() string { return sexes.label(s) }
func (s *Sex) UnmarshalText(b []byte) error { return sexes.parse(s, b) }

type Gender string

const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderNonBinary   Gender = "N"
	GenderTransgender Gender = "T"
	GenderUnknown     Gender = "U"
	GenderOther       Gender = "O"
)

var genders = newCodeSet[Gender]("gender",
	"M", "Male",
	"F", "Female",
	"N", "Non-binary",
	"T", "Transgendered",
	"U", "Unknown",
	"O", "Others",
)

func (g Gender) Valid() bool { return genders.valid(g) }
func (g Gender) Label() string { return genders.label(g) }
func (g *Gender) UnmarshalText(b []byte) error { return genders.parse(g, b) }

type Ethnicity string

const (
	EthnicityMalay           Ethnicity = "ML"
	EthnicityChinese         Ethnicity = "CH"
	EthnicityIndian          Ethnicity = "IN"
	EthnicityIban            Ethnicity = "IB"
	EthnicityKadazanMurut    Ethnicity = "KM"
	EthnicityWestIndigenous  Ethnicity = "IM"
	EthnicityEastIndigenous  Ethnicity = "IS"
	EthnicityEastAsian       Ethnicity = "EA"
	EthnicityHispanic        Ethnicity = "HI"
	EthnicityPacificIslander Ethnicity = "PI"
	EthnicityArab            Ethnicity = "AR"
	EthnicityPersian         Ethnicity = "PE"
	EthnicityUnspecified     Ethnicity = "UN"
)

var ethnicities = newCodeSet[Ethnicity]("ethnicity",
	"ML", "Malay",
	"CH", "Chinese",
	"IN", "Indian",
	"IB", "Iban",
	"KM", "Kadazan Murut",
	"IM", "West Malaysia indigenous",
	"IS", "Other East Malaysia indigenous",
	"EA", "East Asian",
	"HI", "Hispanic",
	"PI", "Pacific Islander",
	"AR", "Arab",
	"PE", "Persian",
	"UN", "Unspecified",
)

func (e Ethnicity) Valid() bool { return ethnicities.valid(e) }
func (e Ethnicity) Label() string { return ethnicities.label(e) }
func (e *Ethnicity) UnmarshalText(b []byte) error { return ethnicities.parse(e, b) }

type IdentificationType string

const (
	IDNationalRegistration IdentificationType = "NR"
	IDPassport             IdentificationType = "PP"
	IDEmployment           IdentificationType = "EI"
)

var identificationTypes = newCodeSet[IdentificationType]("identification_type",
	"NR", "National registration id",
	"PP", "Passport id",
	"EI", "Employment id",
)

func (t IdentificationType) Valid() bool { return identificationTypes.valid(t) }
func (t IdentificationType) Label() string { return identificationTypes.label(t) }
func (t *IdentificationType) UnmarshalText(b []byte) error { return identificationTypes.parse(t, b) }

type ContactSystem string

const (
	ContactPhone  ContactSystem = "phone"
	ContactMobile ContactSystem = "mobile"
	ContactFax    ContactSystem = "fax"
	ContactEmail  ContactSystem = "email"
	ContactURL    ContactSystem = "url"
	ContactSMS    ContactSystem = "sms"
)

var contactSystems = newCodeSet[ContactSystem]("contact_system",
	"phone", "phone",
	"mobile", "mobile",
	"fax", "fax",
	"email", "E-mail",
	"url", "url",
	"sms", "sms",
)

func (s ContactSystem) Valid() bool { return contactSystems.valid(s) }
func (s ContactSystem) Label() string { return contactSystems.label(s) }
func (s *ContactSystem) UnmarshalText(b []byte) error { return contactSystems.parse(s, b) }

type ContactUse string

const (
	ContactUseHome      ContactUse = "H"
	ContactUseWork      ContactUse = "W"
	ContactUseTemporary ContactUse = "T"
	ContactUseOld       ContactUse = "O"
	ContactUsePersonal  ContactUse = "P"
)

var contactUses = newCodeSet[ContactUse]("contact_use",
	"H", "home",
	"W", "work",
	"T", "temporary",
	"O", "old",
	"P", "personal",
)

func (u ContactUse) Valid() bool { return contactUses.valid(u) }
func (u ContactUse) Label() string { return contactUses.label(u) }
func (u *ContactUse) UnmarshalText(b []byte) error { return contactUses.parse(u, b) }

// OrgContactSystem has no mobile entry, unlike ContactSystem.
type OrgContactSystem string

const (
	OrgContactPhone OrgContactSystem = "phone"
	OrgContactFax   OrgContactSystem = "fax"
	OrgContactEmail OrgContactSystem = "email"
	OrgContactURL   OrgContactSystem = "url"
	OrgContactSMS   OrgContactSystem = "sms"
)

var orgContactSystems = newCodeSet[OrgContactSystem]("organization_contact_system",
	"phone", "phone",
	"fax", "fax",
	"email", "E-mail",
	"url", "url",
	"sms", "sms",
)

func (s OrgContactSystem) Valid() bool { return orgContactSystems.valid(s) }
func (s OrgContactSystem) Label() string { return orgContactSystems.label(s) }
func (s *OrgContactSystem) UnmarshalText(b []byte) error { return orgContactSystems.parse(s, b) }

type OrgContactUse string

const (
	OrgContactUseTemporary OrgContactUse = "T"
	OrgContactUseOld       OrgContactUse = "O"
	OrgContactUseBilling   OrgContactUse = "B"
	OrgContactUseEnquiry   OrgContactUse = "E"
)

var orgContactUses = newCodeSet[OrgContactUse]("organization_contact_use",
	"T", "temporary",
	"O", "old",
	"B", "billing",
	"E", "enquiry",
)

func (u OrgContactUse) Valid() bool { return orgContactUses.valid(u) }
func (u OrgContactUse) Label() string { return orgContactUses.label(u) }
func (u *OrgContactUse) UnmarshalText(b []byte) error { return orgContactUses.parse(u, b) }

// ProjectRole is a subject's position in a project team.
type ProjectRole string

const (
	RolePrincipal  ProjectRole = "pi"
	RoleCoResearch ProjectRole = "co"
	RoleStudent    ProjectRole = "student"
	RoleScientific ProjectRole = "so"
	RoleEmployee   ProjectRole = "employee"
)

var projectRoles = newCodeSet[ProjectRole]("project_role",
	"pi", "Principal researcher",
	"co", "Co researcher",
	"student", "Research student",
	"so", "Scientific officer",
	"employee", "Company employee",
)

func (r ProjectRole) Valid() bool { return projectRoles.valid(r) }
func (r ProjectRole) Label() string { return projectRoles.label(r) }
func (r *ProjectRole) UnmarshalText(b []byte) error { return projectRoles.parse(r, b) }

// ApprovalStep is one signature on a procurement initiation.
type ApprovalStep string

const (
	StepPrepare    ApprovalStep = "prepare"
	StepInitiate   ApprovalStep = "initiate"
	StepSupervisor ApprovalStep = "supervisor"
	StepHOD        ApprovalStep = "hod"
)

var approvalSteps = newCodeSet[ApprovalStep]("approval_step",
	"prepare", "Prepared by",
	"initiate", "Initiated by",
	"supervisor", "Approved by supervisor",
	"hod", "Approved by HOD",
)

func (s ApprovalStep) Valid() bool { return approvalSteps.valid(s) }
func (s ApprovalStep) Label() string { return approvalSteps.label(s) }
func (s *ApprovalStep) UnmarshalText(b []byte) error { return approvalSteps.parse(s, b) }
