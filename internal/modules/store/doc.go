package store

import "github.com/alexken/stockroom/internal/openapi"

// DocSchemas declares the component schemas for the store endpoints.
func DocSchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Store": openapi.Object(map[string]*openapi.Schema{
			"id":          openapi.UUID(),
			"name":        openapi.String(),
			"description": openapi.String(),
			"address":     openapi.String(),
			"created_at":  openapi.DateTime(),
			"updated_at":  openapi.DateTime(),
		}, "id", "name"),
		"NewStore": openapi.Object(map[string]*openapi.Schema{
			"name":        openapi.String(),
			"description": openapi.String(),
			"address":     openapi.String(),
		}, "name"),
		"StoreUpdate": openapi.Object(map[string]*openapi.Schema{
			"name":        openapi.String(),
			"description": openapi.String(),
			"address":     openapi.String(),
		}),
	}
}

// DocPaths declares the store paths, kept in sync with RegisterRoutes.
func DocPaths() map[string]openapi.PathItem {
	tags := []string{"stores"}
	return map[string]openapi.PathItem{
		"/api/v1/stores": {
			"post": {
				Summary:     "Create a store",
				Tags:        tags,
				RequestBody: openapi.JSONBody(openapi.Ref("NewStore")),
				Responses: map[string]openapi.Response{
					"201": openapi.JSONResponse("Created", openapi.Ref("Store")),
					"409": openapi.ErrorResponse("Duplicate name"),
					"422": openapi.ErrorResponse("Invalid payload"),
				},
			},
			"get": {
				Summary:    "List stores",
				Tags:       tags,
				Parameters: openapi.Paging(),
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Array(openapi.Ref("Store"))),
				},
			},
		},
		"/api/v1/stores/{id}": {
			"get": {
				Summary:    "Get store by ID",
				Tags:       tags,
				Parameters: []openapi.Parameter{openapi.PathID()},
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Ref("Store")),
					"404": openapi.ErrorResponse("Not found"),
				},
			},
			"put": {
				Summary:     "Update a store",
				Tags:        tags,
				Parameters:  []openapi.Parameter{openapi.PathID()},
				RequestBody: openapi.JSONBody(openapi.Ref("StoreUpdate")),
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Ref("Store")),
					"404": openapi.ErrorResponse("Not found"),
					"409": openapi.ErrorResponse("Duplicate name"),
					"422": openapi.ErrorResponse("Invalid payload"),
				},
			},
			"delete": {
				Summary:    "Delete a store",
				Tags:       tags,
				Parameters: []openapi.Parameter{openapi.PathID()},
				Responses: map[string]openapi.Response{
					"204": openapi.Empty("Deleted"),
					"404": openapi.ErrorResponse("Not found"),
					"409": openapi.ErrorResponse("Store still referenced by stock"),
				},
			},
		},
		"/api/v1/stores/name/{name}": {
			"get": {
				Summary: "Get store by name",
				Tags:    tags,
				Parameters: []openapi.Parameter{
					{Name: "name", In: "path", Required: true, Schema: openapi.String()},
				},
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Ref("Store")),
					"404": openapi.ErrorResponse("Not found"),
				},
			},
		},
	}
}
