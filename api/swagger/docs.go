// Package swagger holds the generated OpenAPI document registration.
// Regenerate with: swag init -g cmd/api/main.go -o api/swagger
package swagger

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
        "/attendance/scan": {
            "post": {
                "tags": ["attendance"],
                "summary": "Process a card scan",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/attendance": {
            "get": {
                "tags": ["attendance"],
                "summary": "List attendance records",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/attendance/monthly/{userId}": {
            "get": {
                "tags": ["attendance"],
                "summary": "A user's attendance for one month",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/attendance/mark-absent": {
            "post": {
                "tags": ["attendance"],
                "summary": "Eagerly mark yesterday's absentees",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/login": {
            "post": {
                "tags": ["users"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/users/register": {
            "post": {
                "tags": ["users"],
                "summary": "Register an employee",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
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
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "HR Attendance API",
	Description:      "RFID attendance back-office: card scans, attendance ledger, shifts, leaves, complaints, notices and salary estimates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
