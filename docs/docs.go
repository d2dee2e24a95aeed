// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {
            "get": {"tags": ["system"], "summary": "Health check", "responses": {"200": {"description": "OK"}, "503": {"description": "Database unavailable"}}}
        },
        "/api/reviews": {
            "get": {
                "tags": ["reviews"],
                "summary": "List reviews of a target",
                "parameters": [
                    {"type": "string", "name": "targetId", "in": "query", "required": true},
                    {"type": "string", "name": "targetType", "in": "query", "required": true, "enum": ["COURSE"]},
                    {"type": "integer", "name": "page", "in": "query", "default": 1},
                    {"type": "integer", "name": "pageSize", "in": "query", "default": 10},
                    {"type": "string", "name": "orderBy", "in": "query", "description": "e.g. 'score desc, createdAt'"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}, "404": {"description": "Target not found"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"],
                "summary": "Create a review",
                "parameters": [{"name": "review", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateReviewRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid"}, "404": {"description": "Not found"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/reviews/{id}": {
            "get": {
                "tags": ["reviews"],
                "summary": "Get a review",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"],
                "summary": "Modify a review",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "review", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ModifyReviewRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"],
                "summary": "Delete a review",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not found"}}
            }
        },
        "/api/files": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "tags": ["files"],
                "summary": "Upload a review attachment",
                "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid file"}}
            }
        },
        "/api/evaluations": {
            "get": {
                "tags": ["evaluations"],
                "summary": "Find an evaluation by type",
                "parameters": [{"type": "string", "name": "type", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/evaluations/{id}": {
            "get": {
                "tags": ["evaluations"],
                "summary": "Get an evaluation",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/evaluations/{id}/questions": {
            "get": {
                "tags": ["evaluations"],
                "summary": "List the questionnaire of an evaluation",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/admin/evaluations": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Create an evaluation",
                "parameters": [{"name": "evaluation", "in": "body", "required": true, "schema": {"type": "object", "properties": {"type": {"type": "string"}}}}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/admin/evaluations/{id}/questions": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Add a question to an evaluation",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "question", "in": "body", "required": true, "schema": {"type": "object", "properties": {"question": {"type": "string"}}}}
                ],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not found"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/admin/questions/{id}/answers": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Add an answer to a question",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "answer", "in": "body", "required": true, "schema": {"type": "object", "properties": {"answer": {"type": "string"}}}}
                ],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not found"}, "409": {"description": "Conflict"}}
            }
        }
    },
    "definitions": {
        "service.CreateReviewRequest": {
            "type": "object",
            "required": ["targetId", "targetType", "evaluationId"],
            "properties": {
                "targetId": {"type": "string"},
                "targetType": {"type": "string", "enum": ["COURSE"]},
                "evaluationId": {"type": "string"},
                "answerIds": {"type": "array", "items": {"type": "string"}},
                "fileId": {"type": "string"},
                "score": {"type": "number", "example": 4.5},
                "content": {"type": "string"}
            }
        },
        "service.ModifyReviewRequest": {
            "type": "object",
            "properties": {
                "answerIds": {"type": "array", "items": {"type": "string"}},
                "score": {"type": "number"},
                "content": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Course Review API",
	Description:      "Reviews, scores and questionnaire answers for courses.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
