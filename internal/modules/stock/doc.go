package stock

import "github.com/alexken/stockroom/internal/openapi"

// DocSchemas declares the component schemas for the stock endpoints.
func DocSchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Stock": openapi.Object(map[string]*openapi.Schema{
			"id":         openapi.UUID(),
			"store_id":   openapi.UUID(),
			"item_id":    openapi.UUID(),
			"quantity":   openapi.NonNegativeInt(),
			"sold":       openapi.NonNegativeInt(),
			"price":      openapi.NonNegativeNumber(),
			"created_at": openapi.DateTime(),
			"updated_at": openapi.DateTime(),
		}, "id", "store_id", "item_id", "quantity"),
		"NewStock": openapi.Object(map[string]*openapi.Schema{
			"store_id": openapi.UUID(),
			"item_id":  openapi.UUID(),
			"quantity": openapi.NonNegativeInt(),
			"sold":     openapi.NonNegativeInt(),
			"price":    openapi.NonNegativeNumber(),
		}, "store_id", "item_id"),
		"StockUpdate": openapi.Object(map[string]*openapi.Schema{
			"quantity": openapi.NonNegativeInt(),
			"sold":     openapi.NonNegativeInt(),
			"price":    openapi.NonNegativeNumber(),
		}),
		"StockAdjustment": openapi.Object(map[string]*openapi.Schema{
			"store_id": openapi.UUID(),
			"item_id":  openapi.UUID(),
			"quantity": openapi.Int(),
			"sold":     openapi.Int(),
			"price":    openapi.NonNegativeNumber(),
		}, "store_id", "item_id"),
		"StockReport": openapi.Object(map[string]*openapi.Schema{
			"id":         openapi.UUID(),
			"store_id":   openapi.UUID(),
			"item_id":    openapi.UUID(),
			"quantity":   openapi.NonNegativeInt(),
			"sold":       openapi.NonNegativeInt(),
			"price":      openapi.NonNegativeNumber(),
			"item":       openapi.String(),
			"store":      openapi.String(),
			"created_at": openapi.DateTime(),
			"updated_at": openapi.DateTime(),
		}, "id", "store_id", "item_id", "quantity", "item", "store"),
	}
}

// DocPaths declares the stock paths, kept in sync with RegisterRoutes.
func DocPaths() map[string]openapi.PathItem {
	tags := []string{"stock"}
	return map[string]openapi.PathItem{
		"/api/v1/stock": {
			"post": {
				Summary:     "Create a stock record",
				Tags:        tags,
				RequestBody: openapi.JSONBody(openapi.Ref("NewStock")),
				Responses: map[string]openapi.Response{
					"201": openapi.JSONResponse("Created", openapi.Ref("Stock")),
					"409": openapi.ErrorResponse("Duplicate (store, item) pair or unknown reference"),
					"422": openapi.ErrorResponse("Invalid payload"),
				},
			},
			"get": {
				Summary: "List stock joined with store and item names",
				Tags:    tags,
				Parameters: append([]openapi.Parameter{
					{Name: "store_id", In: "query", Schema: openapi.UUID()},
					{Name: "item_id", In: "query", Schema: openapi.UUID()},
				}, openapi.Paging()...),
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Array(openapi.Ref("StockReport"))),
					"422": openapi.ErrorResponse("Invalid filter"),
				},
			},
		},
		"/api/v1/stock/adjust": {
			"post": {
				Summary:     "Adjust stock by signed deltas, creating the record when absent",
				Tags:        tags,
				RequestBody: openapi.JSONBody(openapi.Ref("StockAdjustment")),
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("Resulting record", openapi.Ref("Stock")),
					"409": openapi.ErrorResponse("Unknown store or item reference"),
					"422": openapi.ErrorResponse("Invalid payload"),
				},
			},
		},
		"/api/v1/stock/{id}": {
			"get": {
				Summary:    "Get stock record by ID",
				Tags:       tags,
				Parameters: []openapi.Parameter{openapi.PathID()},
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Ref("Stock")),
					"404": openapi.ErrorResponse("Not found"),
				},
			},
			"put": {
				Summary:     "Update a stock record",
				Tags:        tags,
				Parameters:  []openapi.Parameter{openapi.PathID()},
				RequestBody: openapi.JSONBody(openapi.Ref("StockUpdate")),
				Responses: map[string]openapi.Response{
					"200": openapi.JSONResponse("OK", openapi.Ref("Stock")),
					"404": openapi.ErrorResponse("Not found"),
					"422": openapi.ErrorResponse("Invalid payload"),
				},
			},
			"delete": {
				Summary:    "Delete a stock record",
				Tags:       tags,
				Parameters: []openapi.Parameter{openapi.PathID()},
				Responses: map[string]openapi.Response{
					"204": openapi.Empty("Deleted"),
					"404": openapi.ErrorResponse("Not found"),
				},
			},
		},
	}
}
