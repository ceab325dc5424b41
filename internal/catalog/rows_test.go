package catalog

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allRows() []any {
	return []any{
		Object{}, Table{}, View{}, Procedure{}, Schema{}, Column{}, MaskedColumn{},
		ComputedColumn{}, IdentityColumn{}, Type{}, TableType{}, Parameter{}, Index{},
		IndexColumn{}, KeyConstraint{}, ForeignKey{}, ForeignKeyColumn{}, CheckConstraint{},
		DefaultConstraint{}, SQLModule{}, Trigger{}, TriggerEvent{}, Sequence{}, Synonym{},
		Statistic{}, StatisticColumn{}, SQLExpressionDependency{}, ExtendedProperty{},
		Partition{}, AllocationUnit{}, DataSpace{}, DatabaseFile{}, MasterFile{}, Database{},
		Configuration{}, DatabasePrincipal{}, DatabasePermission{}, DatabaseRoleMember{},
		ServerPrincipal{}, Session{}, Request{}, Connection{}, QueryStat{}, CachedPlan{},
		Scheduler{}, Task{}, WaitingTask{}, WaitStat{}, MemoryClerk{}, PerformanceCounter{},
		SysInfo{}, SysMemory{}, ProcessMemory{}, Lock{}, ActiveTransaction{},
		SessionTransaction{}, PartitionStat{}, IndexUsageStat{}, VirtualFileStat{},
	}
}

// columnFields flattens embedded base rows the same way loaders do.
func columnFields(t reflect.Type) []reflect.StructField {
	var res []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			for _, inner := range columnFields(f.Type) {
				inner.Index = append([]int{i}, inner.Index...)
				res = append(res, inner)
			}
			continue
		}
		res = append(res, f)
	}
	return res
}

func TestRows_ColumnTags(t *testing.T) {
	for _, row := range allRows() {
		typ := reflect.TypeOf(row)
		t.Run(typ.Name(), func(t *testing.T) {
			seen := make(map[string]bool)
			for _, f := range columnFields(typ) {
				col := f.Tag.Get("db")
				require.NotEmpty(t, col, f.Name)
				assert.Equal(t, col, f.Tag.Get("json"), f.Name)
				assert.False(t, seen[col], "duplicate column %s", col)
				seen[col] = true
			}
		})
	}
}

// sample returns a distinct non zero value for a field.
func sample(t *testing.T, typ reflect.Type, seed int) reflect.Value {
	t.Helper()
	v := reflect.New(typ).Elem()
	switch {
	case typ == reflect.TypeOf(time.Time{}):
		v.Set(reflect.ValueOf(time.Date(2024, 3, 1, 10, 0, seed%60, 0, time.UTC)))
		return v
	case typ == reflect.TypeOf(Binary{}):
		v.Set(reflect.ValueOf(Binary{byte(seed), 0xfe}))
		return v
	}
	switch typ.Kind() {
	case reflect.Pointer:
		v.Set(reflect.New(typ.Elem()))
		v.Elem().Set(sample(t, typ.Elem(), seed))
	case reflect.String:
		v.SetString("value" + string(rune('a'+seed%26)))
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(seed + 1))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(seed%250 + 1))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(seed) + 0.5)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			v.Index(i).SetUint(uint64(seed + i))
		}
	default:
		t.Fatalf("no sample for %s", typ)
	}
	return v
}

func TestRows_RoundTrip(t *testing.T) {
	for _, row := range allRows() {
		typ := reflect.TypeOf(row)
		t.Run(typ.Name(), func(t *testing.T) {
			fields := columnFields(typ)
			built := reflect.New(typ).Elem()
			want := make([]reflect.Value, len(fields))
			for i, f := range fields {
				want[i] = sample(t, f.Type, i)
				built.FieldByIndex(f.Index).Set(want[i])
			}

			got := reflect.ValueOf(built.Interface())
			for i, f := range fields {
				assert.Equal(t, want[i].Interface(), got.FieldByIndex(f.Index).Interface(), f.Name)
			}
		})
	}
}

func TestRows_NullableFieldsAcceptNil(t *testing.T) {
	for _, row := range allRows() {
		typ := reflect.TypeOf(row)
		t.Run(typ.Name(), func(t *testing.T) {
			v := reflect.ValueOf(row)
			for _, f := range columnFields(typ) {
				fv := v.FieldByIndex(f.Index)
				switch f.Type.Kind() {
				case reflect.Pointer, reflect.Slice:
					assert.True(t, fv.IsNil(), f.Name)
				}
			}
		})
	}
}

func TestRows_NoMutatingMethods(t *testing.T) {
	for _, row := range allRows() {
		typ := reflect.TypeOf(row)
		t.Run(typ.Name(), func(t *testing.T) {
			assert.Equal(t, typ.NumMethod(), reflect.PointerTo(typ).NumMethod(),
				"%s has pointer receiver methods", typ.Name())
		})
	}
}

func TestRows_MatchDescriptors(t *testing.T) {
	assert.Len(t, Descriptors(), len(allRows()))
}
