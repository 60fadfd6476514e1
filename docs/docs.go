// Package docs registers the OpenAPI description served under /swagger.
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
    "paths": {
        "/v1/me": {
            "get": {
                "security": [{"SessionAuth": []}],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/me/events": {
            "get": {
                "security": [{"SessionAuth": []}],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Events of the current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.myEventsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/events": {
            "get": {
                "security": [{"SessionAuth": []}],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "parameters": [
                    {"enum": ["draft", "active", "archived"], "type": "string", "description": "Filter by status", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"SessionAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.eventResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/events/{event_id}": {
            "get": {
                "security": [{"SessionAuth": []}],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "event_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/events/{event_id}/access": {
            "get": {
                "security": [{"SessionAuth": []}],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Caller's access to an event",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "event_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/events/{event_id}/status": {
            "patch": {
                "security": [{"SessionAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Change event status",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "event_id", "in": "path", "required": true},
                    {"description": "Next status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.changeEventStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/events/{event_id}/roles": {
            "get": {
                "security": [{"SessionAuth": []}],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "List event roles",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "event_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventRoleListResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"SessionAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Grant an event role",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "event_id", "in": "path", "required": true},
                    {"description": "Assignment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.grantEventRoleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.eventRoleResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/events/{event_id}/roles/{user_id}": {
            "patch": {
                "security": [{"SessionAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Change an event role",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "event_id", "in": "path", "required": true},
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true},
                    {"description": "New role", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.changeEventRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventRoleResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"SessionAuth": []}],
                "tags": ["roles"],
                "summary": "Revoke an event role",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "event_id", "in": "path", "required": true},
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/users/{user_id}/role": {
            "put": {
                "security": [{"SessionAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Set a user's global role",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true},
                    {"description": "Global role", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.setGlobalRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/users/{user_id}": {
            "delete": {
                "security": [{"SessionAuth": []}],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.createEventRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string", "maxLength": 200}}},
        "handler.changeEventStatusRequest": {"type": "object", "required": ["status"], "properties": {"status": {"type": "string", "enum": ["draft", "active", "archived"]}}},
        "handler.eventResponse": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "status": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "handler.eventListResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/handler.eventResponse"}}, "total": {"type": "integer"}}},
        "handler.grantEventRoleRequest": {"type": "object", "required": ["role", "user_id"], "properties": {"user_id": {"type": "string"}, "role": {"type": "string", "enum": ["jury_admin", "jury_member", "registration_committee", "food_committee", "logistics_committee"]}}},
        "handler.changeEventRoleRequest": {"type": "object", "required": ["role"], "properties": {"role": {"type": "string", "enum": ["jury_admin", "jury_member", "registration_committee", "food_committee", "logistics_committee"]}}},
        "handler.eventRoleResponse": {"type": "object", "properties": {"id": {"type": "string"}, "event_id": {"type": "string"}, "user_id": {"type": "string"}, "role": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "handler.eventRoleListResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/handler.eventRoleResponse"}}}},
        "handler.setGlobalRoleRequest": {"type": "object", "required": ["role"], "properties": {"role": {"type": "string", "enum": ["super_admin", "user", "registration_admin", "food_admin", "logistics_admin", "jury_admin"]}}},
        "domain.User": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "avatar_url": {"type": "string"}, "role": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "handler.userResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/domain.User"}}},
        "handler.myEventResponse": {"type": "object", "properties": {"event": {"$ref": "#/definitions/handler.eventResponse"}, "role": {"type": "string"}}},
        "handler.myEventsResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/handler.myEventResponse"}}}},
        "handler.accessResponse": {"type": "object", "properties": {"event_id": {"type": "string"}, "global_role": {"type": "string"}, "event_role": {"type": "string"}, "super_admin": {"type": "boolean"}}}
    },
    "securityDefinitions": {
        "SessionAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event Portal Access API",
	Description:      "Event-scoped authorization, role administration and session views.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
