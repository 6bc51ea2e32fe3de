package item

import "github.com/alexken/stockroom/internal/openapi"

// DocSchemas declares the component schemas for the item endpoints.
func DocSchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Item": openapi.Object(map[string]*openapi.Schema{
			"id":          openapi.UUID(),
			"name":        openapi.String(),
			"description": openapi.String(),
			"created_at":  openapi.DateTime(),
			"updated_at":  openapi.DateTime(),
		}, "id", "name"),
		"NewItem": openapi.Object(map[string]*openapi.Schema{
			"name":        openapi.String(),
			"description": openapi.String(),
		}, "name"),
		"ItemUpdate": openapi.Object(map[string]*openapi.Schema{
			"name":        openapi.String(),
			"description": openapi.String(),
		}),
	}
}

// DocPaths declares the item paths, kept in sync with RegisterRoutes.
func DocPaths() map[string]openapi.PathItem {
	tags := []string{"items"}
	return map[string]openapi.PathItem{
		"/api/v1/items": {
			"post": {
				Summary:     "Create an item",
				Tags:        tags,
				RequestBody: openapi.JSONBody(openapi.Ref("NewItem")),
				Responses: map[string]openapi.Response{
					"201": openapi.JSONResponse("Created", openapi.Ref("Item")),
					"409": openapi.ErrorResponse("Duplicate name"),
					"422": openapi.ErrorResponse("Invalid payload"),
				},
			},
			"get": {
				Summary:    "List items",
				Tags:       tags,
				Parameters: openapi.Paging(),
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Array(openapi.Ref("Item"))),
				},
			},
		},
		"/api/v1/items/{id}": {
			"get": {
				Summary:    "Get item by ID",
				Tags:       tags,
				Parameters: []openapi.Parameter{openapi.PathID()},
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Ref("Item")),
					"404": openapi.ErrorResponse("Not found"),
				},
			},
			"put": {
				Summary:     "Update an item",
				Tags:        tags,
				Parameters:  []openapi.Parameter{openapi.PathID()},
				RequestBody: openapi.JSONBody(openapi.Ref("ItemUpdate")),
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Ref("Item")),
					"404": openapi.ErrorResponse("Not found"),
					"409": openapi.ErrorResponse("Duplicate name"),
					"422": openapi.ErrorResponse("Invalid payload"),
				},
			},
			"delete": {
				Summary:    "Delete an item",
				Tags:       tags,
				Parameters: []openapi.Parameter{openapi.PathID()},
				Responses: map[string]openapi.Response{
					"204": openapi.Empty("Deleted"),
					"404": openapi.ErrorResponse("Not found"),
					"409": openapi.ErrorResponse("Item still referenced by stock"),
				},
			},
		},
		"/api/v1/items/name/{name}": {
			"get": {
				Summary: "Get item by name",
				Tags:    tags,
				Parameters: []openapi.Parameter{
					{Name: "name", In: "path", Required: true, Schema: openapi.String()},
				},
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Ref("Item")),
					"404": openapi.ErrorResponse("Not found"),
				},
			},
		},
	}
}
