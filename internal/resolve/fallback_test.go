package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContactAdd(t *testing.T) {
	fields, ok := ExtractContactAdd("add contact Ann Lee, 111, a@x.com")
	require.True(t, ok)
	assert.Equal(t, "Ann Lee", fields["Name"])
	assert.Equal(t, "111", fields["Phone"])
	assert.Equal(t, "a@x.com", fields["Email"])
	_, hasAddress := fields["Address"]
	assert.False(t, hasAddress)

	fields, ok = ExtractContactAdd("Add Contact Bob, 222, b@x.com, 12 High St")
	require.True(t, ok)
	assert.Equal(t, "12 High St", fields["Address"])
}

func TestExtractContactAddRejects(t *testing.T) {
	cases := []string{
		"please add contact Ann, 111, a@x.com", // wrong prefix
		"add contact Ann, 111",                 // too few parts
		"add task Report, tomorrow",
	}
	for _, raw := range cases {
		_, ok := ExtractContactAdd(raw)
		assert.False(t, ok, "raw %q", raw)
	}
}

func TestExtractStatusEdit(t *testing.T) {
	c, u, ok := ExtractStatusEdit("mark task 'looting' as Completed")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"Title": "looting"}, c)
	assert.Equal(t, map[string]string{"Status": "Completed"}, u)

	c, u, ok = ExtractStatusEdit(`update status of "Follow Up" to pending`)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"Title": "Follow Up"}, c)
	assert.Equal(t, map[string]string{"Status": "pending"}, u)

	_, _, ok = ExtractStatusEdit("change the report deadline to friday")
	assert.False(t, ok)
}

func TestExtractDeleteCriteriaWhereClause(t *testing.T) {
	tests := []struct {
		raw    string
		target string
		want   map[string]string
	}{
		{"delete contact where email is test@test.com", "contacts", map[string]string{"Email": "test@test.com"}},
		{"delete contact where mail is a@x.com", "contacts", map[string]string{"Email": "a@x.com"}},
		{"delete task where tittle is 'addtask'", "tasks", map[string]string{"Title": "addtask"}},
		{"delete task where name is cleanup", "tasks", map[string]string{"Title": "cleanup"}},
		{"delete task where status is done", "tasks", map[string]string{"Status": "done"}},
		{"delete contact where phone is 111", "contacts", map[string]string{"Phone": "111"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractDeleteCriteria(tt.raw, tt.target), "raw %q", tt.raw)
	}
}

func TestExtractDeleteCriteriaBareCommand(t *testing.T) {
	assert.Equal(t, map[string]string{"Title": "addtask"},
		ExtractDeleteCriteria("delete task 'addtask'", "tasks"))
	assert.Equal(t, map[string]string{"Name": "rachit"},
		ExtractDeleteCriteria("delete contact 'rachit'", "contacts"))
	// Four tokens: the bare form only fires on exactly three.
	assert.Nil(t, ExtractDeleteCriteria("delete the task addtask", "tasks"))
	assert.Nil(t, ExtractDeleteCriteria("delete everything", "tasks"))
}
