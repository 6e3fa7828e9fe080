package catalog

var catalogSchema = []byte(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"title": "Apps catalog",
	"type": "object",
	"properties": {
		"apps": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"pattern": "^[A-Za-z0-9][A-Za-z0-9._-]*$"
					},
					"category": { "type": "string" },
					"filesystem_required": {
						"type": "string",
						"minLength": 1
					},
					"supports_cli": { "type": "boolean" },
					"supports_gui": { "type": "boolean" },
					"is_paid_app": { "type": "boolean" },
					"version": {
						"type": "integer",
						"minimum": 0
					}
				},
				"required": ["name", "filesystem_required"]
			}
		}
	},
	"required": ["apps"]
}`)
