package exa

import (
	"context"

	"github.com/rs/zerolog/log"
)

// ResearchStart submits an asynchronous research task and returns the
// upstream response, which carries the new task's "id". model and
// outputSchema are optional; outputSchema is sent as output.schema.
func (c *Client) ResearchStart(ctx context.Context, instructions, model string, outputSchema map[string]any) (map[string]any, error) {
	if instructions == "" {
		return nil, NewValidationError("argument 'instructions' is required")
	}

	payload := map[string]any{
		"instructions": instructions,
	}
	if model != "" {
		payload["model"] = model
	}
	if len(outputSchema) > 0 {
		payload["output"] = map[string]any{"schema": outputSchema}
	}
	var out map[string]any
	if err := c.postJSON(ctx, researchEndpoint, payload, &out, singleTimeout); err != nil {
		return nil, err
	}
	log.Debug().Interface("task", out["id"]).Msg("research task created")
	return out, nil
}

// ResearchPoll fetches the status and, once complete, the results of a
// research task. The upstream response is passed through unchanged.
func (c *Client) ResearchPoll(ctx context.Context, taskID string) (map[string]any, error) {
	if taskID == "" {
		return nil, NewValidationError("argument 'task_id' is required")
	}

	var out map[string]any
	if err := c.getJSON(ctx, researchEndpoint+"/"+taskID, &out, singleTimeout); err != nil {
		return nil, err
	}
	return out, nil
}
