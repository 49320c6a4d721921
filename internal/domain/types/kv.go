package types

// KVValue folds the KV store's on-wire shapes (string | {data: string|null}
// | null, per spec.md §9) into a single sum type so callers never branch on
// the collaborator's loose typing.
type KVValue struct {
	present bool
	data    string
}

// Missing is the absent KVValue.
func Missing() KVValue { return KVValue{} }

// Present wraps a stored string.
func Present(data string) KVValue { return KVValue{present: true, data: data} }

// IsPresent reports whether the value exists.
func (v KVValue) IsPresent() bool { return v.present }

// Data returns the stored string and whether it was present.
func (v KVValue) Data() (string, bool) { return v.data, v.present }
