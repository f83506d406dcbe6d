// Package docs holds the generated Swagger specification.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "description": "Authorizes a super-admin, manager, or member credential attempt.",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/manager/members": {
            "get": {
                "produces": ["application/json"],
                "tags": ["manager", "members"],
                "summary": "List members of the manager's gym",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["manager", "members"],
                "summary": "Register a member",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/manager/members/{memberID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["manager", "members"],
                "summary": "Get one member",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["manager", "members"],
                "summary": "Update a member profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/manager/members/{memberID}/extend": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["manager", "members"],
                "summary": "Extend a member's plan",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/manager/members/{memberID}/supplements": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["manager", "members"],
                "summary": "Record a supplement sale",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/manager/members/{memberID}/photos": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["manager", "members"],
                "summary": "Upload a member photo",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/manager/finance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["manager", "finance"],
                "summary": "Financial rollup for the manager's gym",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/manager/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["manager", "finance"],
                "summary": "Full transaction list for the manager's gym",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/manager/terms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["manager"],
                "summary": "Get gym terms",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["manager"],
                "summary": "Update gym terms",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/manager/trainers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["manager", "trainers"],
                "summary": "List trainers for the manager's gym",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["manager", "trainers"],
                "summary": "Add a trainer to the manager's gym",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/manager/reminders": {
            "post": {
                "produces": ["application/json"],
                "tags": ["manager", "reminders"],
                "summary": "Queue expiry reminders for members whose plan ends soon",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "202": {"description": "Accepted"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["member"],
                "summary": "Member self view",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/admin/gyms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin", "gyms"],
                "summary": "List gym tenants",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin", "gyms"],
                "summary": "Create a gym tenant",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/admin/gyms/{gymID}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin", "gyms"],
                "summary": "Update a gym tenant",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin", "gyms"],
                "summary": "Delete a gym tenant",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/admin/gyms/{gymID}/status": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin", "gyms"],
                "summary": "Toggle gym status",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Platform stats",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/metrics": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["system"],
                "summary": "Prometheus metrics",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GymPro API",
	Description:      "Multi-tenant gym administration API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
