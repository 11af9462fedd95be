// Package optimistic provides the one speculative-write pattern the
// client uses: apply a value locally before the server confirms it, and
// roll back to the snapshot if the remote write fails.
package optimistic

// Update snapshots the current value, applies the speculative one, then
// runs commit. On failure the snapshot is restored and the error
// returned; on success the server-confirmed value replaces the
// speculative one.
func Update[T any](get func() T, set func(T), speculative T, commit func() (T, error)) (T, error) {
	snapshot := get()
	set(speculative)

	confirmed, err := commit()
	if err != nil {
		set(snapshot)
		var zero T
		return zero, err
	}

	set(confirmed)
	return confirmed, nil
}
