package driver

import (
	"errors"
	"fmt"

	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
	"github.com/screen-co/libhyscandriver-sub000/pkg/version"
)

// Driver-info schema identity.
const (
	InfoSchemaID      int64 = 0x2c9e5b7d83a1f640
	InfoSchemaVersion int64 = 20190100
)

// Driver-info key paths.
const (
	KeyName        = "/info/name"
	KeyDescription = "/info/description"
	KeyVersion     = "/info/version"
	KeyID          = "/info/id"
	KeyAPIVersion  = "/api/version"
)

// ErrIncompatibleSchema is returned by ParseInfo for schemas that are not
// driver-info schemas.
var ErrIncompatibleSchema = errors.New("incompatible driver info schema")

// Info is the self-description of a driver module.
type Info struct {
	Name        string
	Description string

	// Version is the driver's own version string.
	Version string

	// ID is a stable driver identifier.
	ID string

	// APIVersion is the driver API the module was built against.
	APIVersion int64
}

// NewInfoSchema builds a driver-info schema. A zero APIVersion is replaced
// with version.API.
func NewInfoSchema(info Info) (*schema.Schema, error) {
	if info.APIVersion == 0 {
		info.APIVersion = version.API
	}

	b := schema.NewBuilder()
	if err := b.AddIdentity(schema.IdentityPrefix, InfoSchemaID, InfoSchemaVersion); err != nil {
		return nil, err
	}

	strs := []struct {
		path, name, value string
	}{
		{KeyName, "Name", info.Name},
		{KeyDescription, "Description", info.Description},
		{KeyVersion, "Version", info.Version},
		{KeyID, "Id", info.ID},
	}
	for _, s := range strs {
		if err := b.CreateString(s.path, s.name, "", s.value); err != nil {
			return nil, err
		}
		if err := b.SetAccess(s.path, schema.AccessReadOnly); err != nil {
			return nil, err
		}
	}

	if err := b.CreateInteger(KeyAPIVersion, "API version", "", info.APIVersion); err != nil {
		return nil, err
	}
	if err := b.SetAccess(KeyAPIVersion, schema.AccessReadOnly); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// CheckInfo reports whether s carries the driver-info identity.
func CheckInfo(s schema.Reader) bool {
	return schema.CheckID(s, InfoSchemaID, InfoSchemaVersion)
}

// ParseInfo decodes a driver-info schema. All info keys must be present.
func ParseInfo(s schema.Reader) (Info, error) {
	if !CheckInfo(s) {
		return Info{}, ErrIncompatibleSchema
	}

	var info Info
	for _, f := range []struct {
		path string
		dst  *string
	}{
		{KeyName, &info.Name},
		{KeyDescription, &info.Description},
		{KeyVersion, &info.Version},
		{KeyID, &info.ID},
	} {
		v, ok := s.GetString(f.path)
		if !ok {
			return Info{}, fmt.Errorf("%w: missing %s", ErrIncompatibleSchema, f.path)
		}
		*f.dst = v
	}

	api, ok := s.GetInteger(KeyAPIVersion)
	if !ok {
		return Info{}, fmt.Errorf("%w: missing %s", ErrIncompatibleSchema, KeyAPIVersion)
	}
	info.APIVersion = api
	return info, nil
}
