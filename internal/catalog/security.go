package catalog

import "time"

// DatabasePrincipal is a row of sys.database_principals.
type DatabasePrincipal struct {
	Name                             string    `db:"name" json:"name"`
	PrincipalID                      int32     `db:"principal_id" json:"principal_id"`
	Type                             string    `db:"type" json:"type"`
	TypeDesc                         *string   `db:"type_desc" json:"type_desc"`
	DefaultSchemaName                *string   `db:"default_schema_name" json:"default_schema_name"`
	CreateDate                       time.Time `db:"create_date" json:"create_date"`
	ModifyDate                       time.Time `db:"modify_date" json:"modify_date"`
	OwningPrincipalID                *int32    `db:"owning_principal_id" json:"owning_principal_id"`
	SID                              *Binary   `db:"sid" json:"sid"`
	IsFixedRole                      bool      `db:"is_fixed_role" json:"is_fixed_role"`
	AuthenticationType               int32     `db:"authentication_type" json:"authentication_type"`
	AuthenticationTypeDesc           *string   `db:"authentication_type_desc" json:"authentication_type_desc"`
	DefaultLanguageName              *string   `db:"default_language_name" json:"default_language_name"`
	DefaultLanguageLCID              *int32    `db:"default_language_lcid" json:"default_language_lcid"`
	AllowEncryptedValueModifications bool      `db:"allow_encrypted_value_modifications" json:"allow_encrypted_value_modifications"`
}

// DatabasePermission is a row of sys.database_permissions.
type DatabasePermission struct {
	Class              uint8   `db:"class" json:"class"`
	ClassDesc          *string `db:"class_desc" json:"class_desc"`
	MajorID            int32   `db:"major_id" json:"major_id"`
	MinorID            int32   `db:"minor_id" json:"minor_id"`
	GranteePrincipalID int32   `db:"grantee_principal_id" json:"grantee_principal_id"`
	GrantorPrincipalID int32   `db:"grantor_principal_id" json:"grantor_principal_id"`
	Type               string  `db:"type" json:"type"`
	PermissionName     *string `db:"permission_name" json:"permission_name"`
	State              string  `db:"state" json:"state"`
	StateDesc          *string `db:"state_desc" json:"state_desc"`
}

// DatabaseRoleMember is a row of sys.database_role_members.
type DatabaseRoleMember struct {
	RolePrincipalID   int32 `db:"role_principal_id" json:"role_principal_id"`
	MemberPrincipalID int32 `db:"member_principal_id" json:"member_principal_id"`
}

// ServerPrincipal is a row of sys.server_principals.
type ServerPrincipal struct {
	Name                string    `db:"name" json:"name"`
	PrincipalID         int32     `db:"principal_id" json:"principal_id"`
	SID                 *Binary   `db:"sid" json:"sid"`
	Type                string    `db:"type" json:"type"`
	TypeDesc            *string   `db:"type_desc" json:"type_desc"`
	IsDisabled          *int32    `db:"is_disabled" json:"is_disabled"`
	CreateDate          time.Time `db:"create_date" json:"create_date"`
	ModifyDate          time.Time `db:"modify_date" json:"modify_date"`
	DefaultDatabaseName *string   `db:"default_database_name" json:"default_database_name"`
	DefaultLanguageName *string   `db:"default_language_name" json:"default_language_name"`
	CredentialID        *int32    `db:"credential_id" json:"credential_id"`
	OwningPrincipalID   *int32    `db:"owning_principal_id" json:"owning_principal_id"`
	IsFixedRole         bool      `db:"is_fixed_role" json:"is_fixed_role"`
}
