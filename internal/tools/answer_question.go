package tools

import (
	"context"

	"github.com/exatools/exa-mcp-server/internal/exa"
)

// AnswerQuestionTool answers a natural-language question with citations.
func AnswerQuestionTool(client *exa.Client) Tool {
	return Tool{
		Name: "answer_question",
		Description: "Ask a natural-language question and get a direct answer using Exa's " +
			"Answer API. Returns both the answer and supporting citations.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "The question to answer.",
				},
				"include_text": map[string]interface{}{
					"type":        "boolean",
					"description": "Whether to include full text of supporting sources in the response.",
					"default":     false,
				},
			},
			"required": []string{"query"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			query, err := requireString(input, "query")
			if err != nil {
				return "", err
			}
			result, err := client.Answer(ctx, query, argBool(input, "include_text"))
			if err != nil {
				return "", err
			}
			return marshalResult(result)
		},
	}
}
