package normalize

import "github.com/xeipuuv/gojsonschema"

// Per-pipeline schemas, compiled once at init. They guarantee syntactic
// shape only; semantic rules (lecture counts, answer unions) are enforced
// by the pipelines on the typed values.
var (
	SummarySchema      = mustCompile(summarySchemaJSON)
	MindMapSchema      = mustCompile(mindMapSchemaJSON)
	QuizSchema         = mustCompile(quizSchemaJSON)
	LessonPlanSchema   = mustCompile(lessonPlanSchemaJSON)
	PresentationSchema = mustCompile(presentationSchemaJSON)
	ActivitySchema     = mustCompile(activitySchemaJSON)
)

func mustCompile(schemaJSON string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(err)
	}
	return schema
}

const summarySchemaJSON = `{
	"type": "object",
	"required": ["mainTopics"],
	"properties": {
		"chapterName": {"type": "string"},
		"classLevel": {"type": "integer"},
		"mainTopics": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "subTopics"],
				"properties": {
					"name": {"type": "string"},
					"subTopics": {
						"type": "array",
						"minItems": 1,
						"items": {
							"type": "object",
							"required": ["name", "keyPoints"],
							"properties": {
								"name": {"type": "string"},
								"keyPoints": {
									"type": "array",
									"minItems": 1,
									"items": {
										"type": "object",
										"required": ["point", "description"],
										"properties": {
											"point": {"type": "string"},
											"description": {"type": "string"}
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}
}`

const mindMapSchemaJSON = `{
	"type": "object",
	"required": ["format", "nodeData"],
	"properties": {
		"format": {"type": "string", "enum": ["node_tree"]},
		"nodeData": {
			"type": "object",
			"required": ["id", "topic"],
			"properties": {
				"id": {"type": "string"},
				"topic": {"type": "string"},
				"children": {"type": "array"}
			}
		}
	}
}`

const quizSchemaJSON = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["type", "question", "correctAnswer"],
				"properties": {
					"id": {"type": "string"},
					"type": {"type": "string", "enum": ["multiple-choice", "true-false", "short-answer"]},
					"question": {"type": "string", "minLength": 1},
					"options": {
						"type": "array",
						"minItems": 4,
						"maxItems": 4,
						"items": {"type": "string"}
					},
					"correctAnswer": {"type": ["integer", "string"]},
					"explanation": {"type": "string"}
				}
			}
		}
	}
}`

const lessonPlanSchemaJSON = `{
	"type": "object",
	"required": ["lectures"],
	"properties": {
		"lectures": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["lectureNumber", "title", "duration"],
				"properties": {
					"lectureNumber": {"type": "integer"},
					"title": {"type": "string"},
					"duration": {"type": "integer"},
					"topics": {"type": "array", "items": {"type": "string"}},
					"hasRecap": {"type": "boolean"},
					"recapContent": {"type": "string"},
					"teachPackCards": {"type": "object"},
					"isActivityLecture": {"type": "boolean"}
				}
			}
		},
		"homework": {"type": "string"},
		"parentMessage": {"type": "string"},
		"teachingPace": {"type": "string"}
	}
}`

const presentationSchemaJSON = `{
	"type": "object",
	"required": ["slides"],
	"properties": {
		"slides": {
			"type": "array",
			"minItems": 8,
			"maxItems": 10,
			"items": {
				"type": "object",
				"required": ["slideNumber", "title", "content"],
				"properties": {
					"slideNumber": {"type": "integer"},
					"title": {"type": "string"},
					"content": {"type": "string"},
					"imagePrompt": {"type": "string"}
				}
			}
		}
	}
}`

const activitySchemaJSON = `{
	"type": "object",
	"required": ["title", "activityType", "instructions"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"activityType": {"type": "string", "enum": ["solo", "group"]},
		"selFocus": {"type": "array", "items": {"type": "string"}},
		"realWorldConnection": {"type": "string"},
		"materials": {"type": "array", "items": {"type": "string"}},
		"duration": {"type": "string"},
		"instructions": {
			"type": "object",
			"required": ["steps"],
			"properties": {
				"setup": {"type": "string"},
				"steps": {"type": "array", "minItems": 1, "items": {"type": "string"}},
				"reflection": {"type": "string"}
			}
		},
		"learningObjectives": {"type": "array", "items": {"type": "string"}},
		"assessmentCriteria": {"type": "array", "items": {"type": "string"}},
		"extensions": {"type": "array", "items": {"type": "string"}}
	}
}`
