package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskmate/internal/classify"
	"deskmate/internal/store"
)

func fixture(op, target string, p map[string]any) classify.Classifier {
	return classify.Func(func(ctx context.Context, raw string) (*classify.Request, error) {
		return &classify.Request{Operation: op, Target: target, Parameters: params(p)}, nil
	})
}

func classifyWith(t *testing.T, c classify.Classifier, raw string) *classify.Request {
	t.Helper()
	req, err := c.Classify(context.Background(), raw)
	require.NoError(t, err)
	return req
}

func TestDispatchAdd(t *testing.T) {
	r, contacts, _ := testResolver(t)

	req := classifyWith(t, fixture(classify.OpAdd, "contacts", map[string]any{
		"Name": "Ann", "Phone": "111", "Email": "a@x.com",
	}), "add ann")
	resp := r.Dispatch(req, "add ann")

	assert.True(t, resp.Result.OK())
	assert.Equal(t, "Successfully added to contacts.", resp.Summary)
	assert.Len(t, mustLoad(t, contacts), 1)
}

func TestDispatchFailureSummaryIsTheResultMessage(t *testing.T) {
	r, contacts, _ := testResolver(t)
	seedContacts(t, contacts, store.Record{"Ann", "111", "a@x.com", ""})

	req := classifyWith(t, fixture(classify.OpAdd, "contacts", map[string]any{
		"Name": "Bob", "Phone": "111", "Email": "b@x.com",
	}), "add bob")
	resp := r.Dispatch(req, "add bob")

	assert.False(t, resp.Result.OK())
	assert.Equal(t, "Phone number exists", resp.Summary)
}

func TestDispatchUnknownOperation(t *testing.T) {
	r, _, _ := testResolver(t)

	req := classifyWith(t, fixture("9", "contacts", nil), "do a flip")
	resp := r.Dispatch(req, "do a flip")
	assert.Equal(t, StatusFailed, resp.Result.Status)
	assert.Equal(t, "I'm not sure what you mean. Can you rephrase?", resp.Summary)
}

func TestDispatchUnknownTarget(t *testing.T) {
	r, _, _ := testResolver(t)

	req := classifyWith(t, fixture(classify.OpView, "calendar", nil), "show calendar")
	resp := r.Dispatch(req, "show calendar")
	assert.Equal(t, StatusFailed, resp.Result.Status)
	assert.Equal(t, "I'm not sure what you mean. Can you rephrase?", resp.Summary)
}

func TestDispatchNilRequest(t *testing.T) {
	r, _, _ := testResolver(t)
	resp := r.Dispatch(nil, "")
	assert.Equal(t, StatusFailed, resp.Result.Status)
}

func TestDispatchViewSummaries(t *testing.T) {
	r, contacts, tasks := testResolver(t)
	seedContacts(t, contacts, store.Record{"Ann", "111", "a@x.com", ""})
	seedTasks(t, tasks, store.Record{"Report", "", "", "on going", "None"})

	resp := r.Dispatch(classifyWith(t, fixture(classify.OpView, "contacts", nil), "show contacts"), "show contacts")
	assert.Equal(t, "Here is the requested information about contacts.", resp.Summary)

	resp = r.Dispatch(classifyWith(t, fixture(classify.OpView, "tasks", nil), "show tasks"), "show tasks")
	assert.Equal(t, "Here are the tasks assigned to the requested person:", resp.Summary)
	require.Len(t, resp.Result.Data, 1)
}

// The full command sequence from a fresh store to an empty one.
func TestEndToEndScenario(t *testing.T) {
	r, _, _ := testResolver(t)

	res := r.Add("contacts", map[string]any{"Name": "Ann", "Phone": "111", "Email": "a@x.com"}, "")
	require.Equal(t, StatusSuccess, res.Status)

	res = r.Add("contacts", map[string]any{"Name": "Bob", "Phone": "111", "Email": "b@x.com"}, "")
	require.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.Message, "Phone")

	res = r.Delete("contacts", criteria(map[string]any{"Name": "Ann"}), "")
	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "Deleted 1 contact(s).", res.Message)

	res = r.View("contacts", params(nil))
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "No matching records found", res.Message)
}
