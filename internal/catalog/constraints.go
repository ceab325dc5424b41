package catalog

// KeyConstraint is a row of sys.key_constraints, a PRIMARY KEY or UNIQUE
// constraint.
type KeyConstraint struct {
	Object
	UniqueIndexID *int32 `db:"unique_index_id" json:"unique_index_id"`
	IsSystemNamed bool   `db:"is_system_named" json:"is_system_named"`
}

// ForeignKey is a row of sys.foreign_keys.
type ForeignKey struct {
	Object
	ReferencedObjectID          *int32  `db:"referenced_object_id" json:"referenced_object_id"`
	KeyIndexID                  *int32  `db:"key_index_id" json:"key_index_id"`
	IsDisabled                  bool    `db:"is_disabled" json:"is_disabled"`
	IsNotForReplication         bool    `db:"is_not_for_replication" json:"is_not_for_replication"`
	IsNotTrusted                bool    `db:"is_not_trusted" json:"is_not_trusted"`
	DeleteReferentialAction     *uint8  `db:"delete_referential_action" json:"delete_referential_action"`
	DeleteReferentialActionDesc *string `db:"delete_referential_action_desc" json:"delete_referential_action_desc"`
	UpdateReferentialAction     *uint8  `db:"update_referential_action" json:"update_referential_action"`
	UpdateReferentialActionDesc *string `db:"update_referential_action_desc" json:"update_referential_action_desc"`
	IsSystemNamed               bool    `db:"is_system_named" json:"is_system_named"`
}

// ForeignKeyColumn is a row of sys.foreign_key_columns.
type ForeignKeyColumn struct {
	ConstraintObjectID int32 `db:"constraint_object_id" json:"constraint_object_id"`
	ConstraintColumnID int32 `db:"constraint_column_id" json:"constraint_column_id"`
	ParentObjectID     int32 `db:"parent_object_id" json:"parent_object_id"`
	ParentColumnID     int32 `db:"parent_column_id" json:"parent_column_id"`
	ReferencedObjectID int32 `db:"referenced_object_id" json:"referenced_object_id"`
	ReferencedColumnID int32 `db:"referenced_column_id" json:"referenced_column_id"`
}

// CheckConstraint is a row of sys.check_constraints. ParentColumnID is 0 for
// table level constraints.
type CheckConstraint struct {
	Object
	IsDisabled            bool    `db:"is_disabled" json:"is_disabled"`
	IsNotForReplication   bool    `db:"is_not_for_replication" json:"is_not_for_replication"`
	IsNotTrusted          bool    `db:"is_not_trusted" json:"is_not_trusted"`
	ParentColumnID        int32   `db:"parent_column_id" json:"parent_column_id"`
	Definition            *string `db:"definition" json:"definition"`
	UsesDatabaseCollation *bool   `db:"uses_database_collation" json:"uses_database_collation"`
	IsSystemNamed         bool    `db:"is_system_named" json:"is_system_named"`
}

// DefaultConstraint is a row of sys.default_constraints.
type DefaultConstraint struct {
	Object
	ParentColumnID int32   `db:"parent_column_id" json:"parent_column_id"`
	Definition     *string `db:"definition" json:"definition"`
	IsSystemNamed  bool    `db:"is_system_named" json:"is_system_named"`
}
