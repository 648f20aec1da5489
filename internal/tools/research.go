package tools

import (
	"context"

	"github.com/exatools/exa-mcp-server/internal/exa"
)

// ResearchStartTool submits an asynchronous research task.
func ResearchStartTool(client *exa.Client) Tool {
	return Tool{
		Name: "research_start",
		Description: "Start an asynchronous research task that uses Exa's agentic pipeline to " +
			"search, reason, and synthesize an answer. Returns a task ID which you can poll " +
			"to retrieve results.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"instructions": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language instructions describing the research task.",
				},
				"model": map[string]interface{}{
					"type":        "string",
					"description": "Optional model to use for research (e.g. 'exa-research' or 'exa-research-pro').",
				},
				"output_schema": map[string]interface{}{
					"type":        "object",
					"description": "Optional JSON Schema specifying the desired structured output.",
				},
			},
			"required": []string{"instructions"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			instructions, err := requireString(input, "instructions")
			if err != nil {
				return "", err
			}
			result, err := client.ResearchStart(ctx, instructions,
				argString(input, "model"),
				argObject(input, "output_schema"))
			if err != nil {
				return "", err
			}
			return marshalResult(result)
		},
	}
}

// ResearchPollTool checks the status and results of a research task.
func ResearchPollTool(client *exa.Client) Tool {
	return Tool{
		Name: "research_poll",
		Description: "Poll a previously created research task to check its status and " +
			"retrieve results once complete.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"task_id": map[string]interface{}{
					"type":        "string",
					"description": "The ID of the research task returned by research_start.",
				},
			},
			"required": []string{"task_id"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			taskID, err := requireString(input, "task_id")
			if err != nil {
				return "", err
			}
			result, err := client.ResearchPoll(ctx, taskID)
			if err != nil {
				return "", err
			}
			return marshalResult(result)
		},
	}
}
