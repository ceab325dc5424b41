package catalog

// TypedValue is implemented by rows that describe a typed value: columns,
// parameters and types themselves.
type TypedValue interface {
	GetSystemTypeID() uint8
	GetUserTypeID() int32
	GetMaxLength() int16
	GetPrecision() uint8
	GetScale() uint8
}

// TypedColumn is implemented by every sys.columns shaped row, so rendering
// and inspection code can handle plain, masked, computed and identity columns
// alike.
type TypedColumn interface {
	TypedValue
	GetObjectID() int32
	GetName() string
	GetColumnID() int32
	GetIsNullable() *bool
}

var (
	_ TypedColumn = Column{}
	_ TypedColumn = MaskedColumn{}
	_ TypedColumn = ComputedColumn{}
	_ TypedColumn = IdentityColumn{}
	_ TypedValue  = Type{}
	_ TypedValue  = TableType{}
	_ TypedValue  = Parameter{}
)
