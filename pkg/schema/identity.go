package schema

// Identity key paths.
const (
	// IdentityPrefix is the branch holding the schema identity.
	IdentityPrefix = "/schema"

	// IDKey holds the schema kind magic number.
	IDKey = IdentityPrefix + "/id"

	// VersionKey holds the schema version as YYYYMMNN.
	VersionKey = IdentityPrefix + "/version"
)

// CheckID reports whether the schema carries exactly the expected id and
// version at /schema/id and /schema/version. Any unreadable key or mismatch
// yields false; no forward or backward compatibility is assumed.
func CheckID(s Reader, id, version int64) bool {
	return CheckIDAt(s, IdentityPrefix, id, version)
}

// CheckIDAt is CheckID for identity keys stored under prefix, as in
// <prefix>/id and <prefix>/version.
func CheckIDAt(s Reader, prefix string, id, version int64) bool {
	if s == nil {
		return false
	}
	gotID, ok := s.GetInteger(prefix + "/id")
	if !ok || gotID != id {
		return false
	}
	gotVersion, ok := s.GetInteger(prefix + "/version")
	if !ok || gotVersion != version {
		return false
	}
	return true
}

// AddIdentity writes read-only <prefix>/id and <prefix>/version keys.
func (b *Builder) AddIdentity(prefix string, id, version int64) error {
	idPath := prefix + "/id"
	versionPath := prefix + "/version"

	if err := b.CreateInteger(idPath, "id", "Schema id", id); err != nil {
		return err
	}
	if err := b.SetAccess(idPath, AccessReadOnly); err != nil {
		return err
	}
	if err := b.CreateInteger(versionPath, "version", "Schema version", version); err != nil {
		return err
	}
	return b.SetAccess(versionPath, AccessReadOnly)
}
