package resolve

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"deskmate/internal/store"
)

func testResolver(t *testing.T) (*Resolver, *store.Store, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	contacts := store.New(filepath.Join(dir, "contacts.csv"), store.Contacts)
	tasks := store.New(filepath.Join(dir, "tasks.csv"), store.Tasks)
	return New(contacts, tasks), contacts, tasks
}

func seedContacts(t *testing.T, s *store.Store, recs ...store.Record) {
	t.Helper()
	require.NoError(t, s.ReplaceAll(recs))
}

func seedTasks(t *testing.T, s *store.Store, recs ...store.Record) {
	t.Helper()
	require.NoError(t, s.ReplaceAll(recs))
}

func mustLoad(t *testing.T, s *store.Store) []store.Record {
	t.Helper()
	recs, err := s.Load()
	require.NoError(t, err)
	return recs
}

func params(kv map[string]any) map[string]any {
	if kv == nil {
		return map[string]any{}
	}
	return kv
}

func criteria(kv map[string]any) map[string]any {
	return map[string]any{"criteria": kv}
}
