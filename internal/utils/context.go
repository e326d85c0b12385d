package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey carries the authenticated token subject (the account email)
// through request contexts.
var SubjectCtxKey = contextKey("subject")

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectCtxKey, subject)
}

func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}
