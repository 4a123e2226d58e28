package fragment

import "github.com/sikiriki12/imgx/internal/providers"

// Classify projects a model response onto an ordered fragment sequence.
// Only the first candidate is read, matching the single-candidate requests
// we send. The first matching rule wins per part; parts carrying nothing we
// know how to present are skipped rather than reported.
func Classify(response *providers.GenerateResponse) []Fragment {
	fragments := []Fragment{}
	if response == nil || len(response.Candidates) == 0 {
		return fragments
	}

	for _, part := range response.Candidates[0].Content.Parts {
		switch {
		case part.Thought && part.Text != "":
			fragments = append(fragments, Fragment{Kind: KindReasoning, Content: part.Text})
		case part.Text != "":
			fragments = append(fragments, Fragment{Kind: KindNarration, Content: part.Text})
		case part.ExecutableCode != nil && part.ExecutableCode.Code != "":
			fragments = append(fragments, Fragment{Kind: KindCode, Content: part.ExecutableCode.Code})
		case part.CodeExecutionResult != nil:
			fragments = append(fragments, Fragment{Kind: KindExecutionResult, Content: part.CodeExecutionResult.Output})
		case part.InlineData != nil:
			fragments = append(fragments, Fragment{
				Kind:     KindImage,
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			})
		}
	}
	return fragments
}
