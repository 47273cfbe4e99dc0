package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "FACILE Enlistment API",
        "description": "Class schedule catalog, conflict detection and timetable rendering",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Department, subject and section browsing"},
        {"name": "Selections", "description": "Selection resolution, conflict checks and open-alternatives scans"},
        {"name": "Timetable", "description": "Weekly grid rendering and export"},
        {"name": "Sessions", "description": "Saved selection drafts"}
    ],
    "paths": {
        "/departments": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List departments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/departments/{dept}/subjects": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List subjects of a department",
                "parameters": [
                    {"name": "dept", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown department", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/departments/{dept}/subjects/{subject}/sections": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List sections of a subject",
                "parameters": [
                    {"name": "dept", "in": "path", "required": true, "type": "string"},
                    {"name": "subject", "in": "path", "required": true, "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown department or subject", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/buildings/{room}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Resolve a room string to its building",
                "parameters": [
                    {"name": "room", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/selections/resolve": {
            "post": {
                "tags": ["Selections"],
                "summary": "Resolve a selection blob against the catalog",
                "parameters": [
                    {"name": "blob", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectionBlob"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed blob", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/selections/alternatives": {
            "post": {
                "tags": ["Selections"],
                "summary": "Scan for open alternatives that fit the current selection",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AlternativesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed blob", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/selections/alternatives/export": {
            "post": {
                "tags": ["Selections"],
                "summary": "Export the scanned open-alternative lists as CSV or PDF",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AlternativesRequest"}},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "400": {"description": "Malformed blob", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/selections/export": {
            "post": {
                "tags": ["Selections"],
                "summary": "Download a selection blob as a JSON attachment",
                "parameters": [
                    {"name": "blob", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectionBlob"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SelectionBlob"}}
                }
            }
        },
        "/selections/timetable": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Render a conflict-free selection as a weekly grid",
                "parameters": [
                    {"name": "blob", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectionBlob"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unresolved pick", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Overlapping sections", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/selections/timetable/export": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Export the rendered timetable as CSV or PDF",
                "parameters": [
                    {"name": "blob", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectionBlob"}},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "409": {"description": "Overlapping sections", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sessions": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Save a selection blob under a new session ID",
                "parameters": [
                    {"name": "blob", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectionBlob"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Restore a saved session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Sessions"],
                "summary": "Replace the blob of a saved session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "blob", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectionBlob"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "Delete a saved session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        }
    },
    "definitions": {
        "SelectionBlob": {
            "type": "object",
            "properties": {
                "nsubjs": {"type": "integer", "minimum": 1, "maximum": 10},
                "depts": {"type": "array", "items": {"type": "string", "x-nullable": true}},
                "subjs": {"type": "array", "items": {"type": "string", "x-nullable": true}},
                "sects": {"type": "array", "items": {"type": "string", "x-nullable": true}}
            },
            "required": ["nsubjs", "depts", "subjs", "sects"]
        },
        "AlternativesRequest": {
            "type": "object",
            "properties": {
                "nsubjs": {"type": "integer"},
                "depts": {"type": "array", "items": {"type": "string", "x-nullable": true}},
                "subjs": {"type": "array", "items": {"type": "string", "x-nullable": true}},
                "sects": {"type": "array", "items": {"type": "string", "x-nullable": true}},
                "targets": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
