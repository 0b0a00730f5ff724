package classify

// Instruction prompts for the two classification stages: one routing call
// that picks the operation and target, then an operation-specific extraction
// call that fills in parameters.

const routerInstructions = `Analyze the command and output JSON with:
  - operation: one of '0' (add), '1' (edit), '2' (delete), '3' (view)
  - target: 'contacts' or 'tasks'
Example: 'add contact John' -> {"operation":"0","target":"contacts"}
Only return valid JSON.`

const addInstructions = `Convert the request into JSON with fields: operation (set to '0' for add), target ('contacts' or 'tasks'), and parameters.
For contacts, include: Name, Phone, Email, and optionally Address.
For tasks, include: Title (required), and optionally Description, DueDate, Status, and AssignedTo.
Only return valid JSON.`

const editInstructions = `Convert user command to JSON with:
- operation: '1' (edit)
- target: 'contacts' or 'tasks'
- parameters: {criteria: {...}, updates: {...}}
Example 1: 'mark task 'looting' as completed' ->
{"operation":"1","target":"tasks","parameters":{"criteria":{"Title":"looting"},"updates":{"Status":"Completed"}}}
Example 2: 'update status of 'Follow Up' to pending' ->
{"operation":"1","target":"tasks","parameters":{"criteria":{"Title":"Follow Up"},"updates":{"Status":"Pending"}}}
Always include explicit Title criteria for task updates.
Only return valid JSON.`

const deleteInstructions = `Convert the request into JSON with fields:
  - operation: set to '2' for delete
  - target: either 'contacts' or 'tasks'
  - parameters: include a 'criteria' dictionary to identify records to delete.
Example: 'delete contact where email is test@test.com' should produce:
{"operation":"2","target":"contacts","parameters":{"criteria":{"Email":"test@test.com"}}}
Only return valid JSON.`

const viewInstructions = `Analyze the following user command and extract the filtering criteria. Only include keys that exist in the CSV headers.
For contacts, the valid keys are: Name, Phone, Email, and Address.
For tasks, the valid keys are: Title, Description, DueDate, Status, and AssignedTo.
Optionally include sort_by and order ('asc' or 'desc') inside parameters.
{
  "operation": "3",
  "target": "<contacts or tasks>",
  "parameters": {
    "criteria": { <only include keys that match the existing fields> }
  }
}
For example, 'show task assign to mohit' should produce:
{"operation":"3","target":"tasks","parameters":{"criteria":{"AssignedTo":"mohit"}}}
Only return valid JSON.`

func instructionsFor(op string) string {
	switch op {
	case OpAdd:
		return addInstructions
	case OpEdit:
		return editInstructions
	case OpDelete:
		return deleteInstructions
	case OpView:
		return viewInstructions
	default:
		return ""
	}
}
