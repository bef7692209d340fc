package submissions

import "context"

type (
	Storage interface {
		CreateSubmission(ctx context.Context, sub Submission) (*Submission, error)
		GetSubmission(ctx context.Context, criteria GetCriteria) (*Submission, error)
		UpdateSubmission(ctx context.Context, criteria GetCriteria, params UpdateParams) (*Submission, error)
		ListSubmissions(ctx context.Context, criteria ListCriteria) ([]*Submission, error)
	}
)
