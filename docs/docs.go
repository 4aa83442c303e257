// Package docs registers the OpenAPI description served at /swagger.
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
        "/api/bookings": {
            "post": {
                "tags": ["compat"],
                "summary": "Acknowledge a booking",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EchoResponse"}},
                    "500": {"description": "Malformed body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/payments": {
            "post": {
                "tags": ["compat"],
                "summary": "Acknowledge a payment",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EchoResponse"}},
                    "500": {"description": "Malformed body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/generate-invoice": {
            "post": {
                "tags": ["compat"],
                "summary": "Render a plain-text invoice",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "Invoice text", "schema": {"type": "string"}},
                    "500": {"description": "Malformed body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/locations": {
            "get": {"tags": ["board"], "summary": "List guesthouses and their rooms", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/board/{location}": {
            "get": {
                "tags": ["board"],
                "summary": "Board of one location for one date",
                "parameters": [
                    {"type": "string", "name": "location", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/board/{location}/{date}/{room}": {
            "put": {
                "tags": ["board"],
                "summary": "Edit one field of one room on one day",
                "parameters": [
                    {"type": "string", "name": "location", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "path", "required": true},
                    {"type": "string", "name": "room", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/bookings": {
            "get": {"tags": ["bookings"], "summary": "List bookings", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["bookings"], "summary": "Create a booking", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/bookings/{id}": {
            "delete": {
                "tags": ["bookings"],
                "summary": "Delete a booking",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "name": "confirm", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Not confirmed"}}
            }
        },
        "/api/v1/bookings/grid": {
            "get": {"tags": ["bookings"], "summary": "Bookings calendar of one month", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/quote": {
            "post": {"tags": ["revenue"], "summary": "Price a stay", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/revenue": {
            "get": {"tags": ["revenue"], "summary": "Monthly income summary", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "dto.EchoResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Front desk API",
	Description:      "Room board, bookings, invoices and income reports for the guesthouses.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
