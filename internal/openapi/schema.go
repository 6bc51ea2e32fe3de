package openapi

// Shorthand constructors used by module doc files.

func zero() *float64 { v := 0.0; return &v }

// Ref points at a named component schema.
func Ref(name string) *Schema { return &Schema{Ref: "#/components/schemas/" + name} }

// String is a plain string schema.
func String() *Schema { return &Schema{Type: "string"} }

// UUID is a string schema with uuid format.
func UUID() *Schema { return &Schema{Type: "string", Format: "uuid"} }

// Int is an integer schema.
func Int() *Schema { return &Schema{Type: "integer"} }

// NonNegativeInt is an integer schema with minimum 0.
func NonNegativeInt() *Schema { return &Schema{Type: "integer", Minimum: zero()} }

// NonNegativeNumber is a number schema with minimum 0.
func NonNegativeNumber() *Schema { return &Schema{Type: "number", Minimum: zero()} }

// DateTime is a string schema with date-time format.
func DateTime() *Schema { return &Schema{Type: "string", Format: "date-time"} }

// Object builds an object schema from its properties and required names.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: props, Required: required}
}

// Array builds an array schema.
func Array(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

// JSONBody declares an application/json request body.
func JSONBody(s *Schema) *RequestBody {
	return &RequestBody{
		Required: true,
		Content:  map[string]MediaType{"application/json": {Schema: s}},
	}
}

// JSONResponse declares an application/json response.
func JSONResponse(desc string, s *Schema) Response {
	return Response{
		Description: desc,
		Content:     map[string]MediaType{"application/json": {Schema: s}},
	}
}

// ErrorResponse is the standard {"error": ...} failure body.
func ErrorResponse(desc string) Response {
	return JSONResponse(desc, Object(map[string]*Schema{"error": String()}))
}

// Empty declares a bodiless response, used for 204.
func Empty(desc string) Response { return Response{Description: desc} }

// PathID is the {id} path parameter.
func PathID() Parameter {
	return Parameter{Name: "id", In: "path", Required: true, Schema: UUID()}
}

// Paging are the limit/offset query parameters shared by list endpoints.
func Paging() []Parameter {
	return []Parameter{
		{Name: "limit", In: "query", Schema: NonNegativeInt()},
		{Name: "offset", In: "query", Schema: NonNegativeInt()},
	}
}
