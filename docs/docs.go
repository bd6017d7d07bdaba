// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/app/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "paths": {
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/readyz": {"get": {"tags": ["health"], "summary": "Readiness check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/version": {"get": {"tags": ["health"], "summary": "Build information", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/loot/chances": {"get": {"tags": ["loot"], "summary": "Drop chances per rarity", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/loot/chests": {"get": {"tags": ["loot"], "summary": "Configured chest types", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/sessions": {"post": {"tags": ["sessions"], "summary": "Start a simulator session", "produces": ["application/json"], "responses": {"201": {"description": "Created"}}}},
        "/api/v1/sessions/{id}": {"delete": {"tags": ["sessions"], "summary": "End a session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/sessions/{id}/open": {"post": {"tags": ["sessions"], "summary": "Open a chest", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/api/v1/sessions/{id}/roll": {"post": {"tags": ["sessions"], "summary": "Roll once", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/api/v1/sessions/{id}/stats": {"get": {"tags": ["sessions"], "summary": "Session statistics", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/sessions/{id}/reset": {"post": {"tags": ["sessions"], "summary": "Reset counters and statistics", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/sessions/{id}/history": {"get": {"tags": ["sessions"], "summary": "Recent chest openings", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/admin/reload-catalog": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "Reload loot tables", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "422": {"description": "Unprocessable Entity"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LootDrop API",
	Description:      "Weighted loot-drop simulator.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
