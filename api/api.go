// Package api holds the generated OpenAPI specification served at /docs.
package api

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
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {
                "tags": ["General"],
                "summary": "Get health",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/version": {
            "get": {
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1": {
            "get": {
                "tags": ["General"],
                "summary": "v1 API",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/transactions": {
            "get": {
                "tags": ["Transactions"],
                "summary": "List transactions",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Transactions"],
                "summary": "Create transaction",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "tags": ["Transactions"],
                "summary": "Get transaction",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "tags": ["Transactions"],
                "summary": "Update transaction",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Transactions"],
                "summary": "Delete transaction",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/import": {
            "post": {
                "tags": ["Import"],
                "summary": "Import transactions",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/export": {
            "get": {
                "tags": ["Import"],
                "summary": "Export transactions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/statistics": {
            "get": {
                "tags": ["Transactions"],
                "summary": "Document statistics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/analytics/balance": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Balance",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/analytics/categories": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Spending by category",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/analytics/trend": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Monthly trend",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/analytics/anomalies": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Anomalies",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/analytics/insights": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Spending insights",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/analytics/suggestions": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Suggestions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/analytics/health": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Health score",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/analytics/alerts": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Budget alerts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/budgets": {
            "get": {
                "tags": ["Budgets"],
                "summary": "List budgets",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/budgets/{category}": {
            "put": {
                "tags": ["Budgets"],
                "summary": "Set budget",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Budgets"],
                "summary": "Delete budget",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/categories": {
            "get": {
                "tags": ["Categories"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Categories"],
                "summary": "Create category",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/categories/{kind}/{name}": {
            "delete": {
                "tags": ["Categories"],
                "summary": "Delete category",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/goals": {
            "get": {
                "tags": ["Goals"],
                "summary": "List goals",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Goals"],
                "summary": "Create goal",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/goals/progress": {
            "get": {
                "tags": ["Goals"],
                "summary": "Goal progress",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/goals/{name}": {
            "delete": {
                "tags": ["Goals"],
                "summary": "Delete goal",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/report": {
            "get": {
                "tags": ["Report"],
                "summary": "Monthly report",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/report/text": {
            "get": {
                "tags": ["Report"],
                "summary": "Monthly report as text",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
