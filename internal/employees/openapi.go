package employees

import "github.com/JaimeStill/employee-portal/pkg/openapi"

type spec struct {
	Create *openapi.Operation
	List   *openapi.Operation
}

// Spec holds the OpenAPI operations for the employee endpoints.
var Spec = spec{
	Create: &openapi.Operation{
		Summary:     "Create employee",
		Description: "Stores the employee with its department and, for developers and testers, its language",
		RequestBody: openapi.RequestBodyJSON("CreateCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Employee created", "Created"),
			400: openapi.ResponseRef("BadRequest"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List employees",
		Description: "Returns every employee joined with department and language, ordered by id",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Employees",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Employee")}},
				},
			},
			500: openapi.ResponseRef("InternalError"),
		},
	},
}

// Schemas returns the component schemas referenced by Spec.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Employee": {
			Type:     "object",
			Required: []string{"id", "name", "department", "language"},
			Properties: map[string]*openapi.Property{
				"id":         {Type: "integer", Example: 1},
				"name":       {Type: "string", Example: "Ada Lovelace"},
				"department": {Type: "string", Example: "Engineering"},
				"language":   {Type: "string", Description: "Developer language, else tester language, else empty", Example: "Go"},
			},
		},
		"CreateCommand": {
			Type:     "object",
			Required: []string{"name", "department", "role"},
			Properties: map[string]*openapi.Property{
				"name":       {Type: "string", Example: "Ada Lovelace"},
				"department": {Type: "string", Example: "Engineering"},
				"language":   {Type: "string", Example: "Go"},
				"role":       {Type: "string", Description: "developer or tester selects the language table", Example: "developer"},
			},
		},
		"Created": {
			Type:     "object",
			Required: []string{"message", "id"},
			Properties: map[string]*openapi.Property{
				"message": {Type: "string", Example: "inserted"},
				"id":      {Type: "integer", Example: 1},
			},
		},
	}
}
