// Package docs registers the OpenAPI document for the fixture routes with
// swag. Keep it in step with the swag annotations on the api handlers.
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
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fixture"
                ],
                "summary": "Greeting",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/payload.GreetingResponse"
                        }
                    }
                }
            }
        },
        "/env": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fixture"
                ],
                "summary": "Process environment",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/payload.EnvironmentResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "probes"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/payload.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "payload.EnvironmentResponse": {
            "type": "object",
            "properties": {
                "environment": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "platform": {
                    "type": "string",
                    "example": "linux/amd64"
                },
                "runtime_version": {
                    "type": "string",
                    "example": "go1.25.7"
                }
            }
        },
        "payload.GreetingResponse": {
            "type": "object",
            "properties": {
                "environment": {
                    "type": "string",
                    "example": "development"
                },
                "message": {
                    "type": "string"
                },
                "port": {
                    "type": "integer",
                    "example": 8080
                },
                "timestamp": {
                    "type": "string",
                    "example": "2026-10-17 12:00:00 UTC"
                }
            }
        },
        "payload.HealthResponse": {
            "type": "object",
            "properties": {
                "memory": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "example": "healthy"
                },
                "uptime": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Flow Test API",
	Description:      "Sample deployable app for exercising deployment pipelines.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
