package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesAllCriteriaMustPass(t *testing.T) {
	rec := Record{"Ann Lee", "111", "A@X.com", "12 High St"}

	assert.True(t, Matches(rec, Contacts, map[string]string{"Name": "ann lee"}))
	assert.True(t, Matches(rec, Contacts, map[string]string{"Name": "  Ann Lee  ", "Email": "a@x.com"}))
	assert.False(t, Matches(rec, Contacts, map[string]string{"Name": "ann lee", "Phone": "222"}))
}

func TestMatchesNormalizesFieldNames(t *testing.T) {
	rec := Record{"Report", "", "2026-04-01", "on going", "Ann"}

	assert.True(t, Matches(rec, Tasks, map[string]string{"due date": "2026-04-01"}))
	assert.True(t, Matches(rec, Tasks, map[string]string{"AssignedTo": "ann"}))
	assert.True(t, Matches(rec, Tasks, map[string]string{"Assigned To": "ANN"}))
}

func TestMatchesUnknownFieldFailsClosed(t *testing.T) {
	rec := Record{"Ann", "111", "a@x.com", ""}

	// An unknown key never matches, even when every other key would.
	assert.False(t, Matches(rec, Contacts, map[string]string{"Nickname": "ann"}))
	assert.False(t, Matches(rec, Contacts, map[string]string{"Name": "ann", "Nickname": "ann"}))
}

func TestMatchesEmptyCriteriaMatchesEverything(t *testing.T) {
	assert.True(t, Matches(Record{"Ann", "111", "a@x.com", ""}, Contacts, nil))
	assert.True(t, Matches(Record{}, Contacts, map[string]string{}))
}

func TestMatchesShortRowFailsOnMissingColumn(t *testing.T) {
	rec := Record{"Report", "notes"}
	assert.True(t, Matches(rec, Tasks, map[string]string{"Title": "report"}))
	assert.False(t, Matches(rec, Tasks, map[string]string{"Status": "on going"}))
}

func TestMatchesExactEqualityOnly(t *testing.T) {
	rec := Record{"Ann Lee", "111", "a@x.com", ""}
	// No substring matching.
	assert.False(t, Matches(rec, Contacts, map[string]string{"Name": "Ann"}))
}
