package composer

import "strings"

// OptOutSentence is appended to every body that does not already carry an
// opt-out clause.
const OptOutSentence = "If this isn't for you, just reply STOP."

const (
	subjectMarker = "subject:"
	bodyMarker    = "body:"
)

// Draft is a generated (subject, body) pair ready for dispatch. Both fields
// are always non-empty once extractDraft has run.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// scanResult is the raw outcome of the two-state line scan, before any
// fallback or post-processing is applied.
type scanResult struct {
	subject      string
	bodyLines    []string
	subjectFound bool
	bodyFound    bool
}

// scanDraft runs a two-state line scanner over the raw completion text.
// Before the body marker: the first line starting (case-insensitively) with
// "subject:" supplies the subject; everything else is ignored. A line
// starting with "body:" switches state and is itself discarded; every
// subsequent line is collected verbatim.
func scanDraft(raw string) scanResult {
	var res scanResult
	for _, line := range strings.Split(raw, "\n") {
		lower := strings.ToLower(line)
		switch {
		case res.bodyFound:
			res.bodyLines = append(res.bodyLines, line)
		case !res.subjectFound && strings.HasPrefix(lower, subjectMarker):
			_, after, _ := strings.Cut(line, ":")
			res.subject = strings.TrimSpace(after)
			res.subjectFound = true
		case strings.HasPrefix(lower, bodyMarker):
			res.bodyFound = true
		}
	}
	return res
}

// extractDraft turns a raw completion into a well-formed Draft:
// marker-based extraction first, then fallbacks (default subject; body from
// all non-marker lines), subject-prefix stripping, and the opt-out clause.
func extractDraft(raw, defaultSubject string) Draft {
	res := scanDraft(raw)

	subject := res.subject
	if subject == "" {
		subject = defaultSubject
	}

	bodyLines := res.bodyLines
	if len(bodyLines) == 0 {
		for _, line := range strings.Split(raw, "\n") {
			lower := strings.ToLower(line)
			if strings.HasPrefix(lower, subjectMarker) || strings.HasPrefix(lower, bodyMarker) {
				continue
			}
			bodyLines = append(bodyLines, line)
		}
	}
	body := strings.TrimSpace(strings.Join(bodyLines, "\n"))

	// The model sometimes repeats the subject as the first body line.
	if subject != "" && strings.HasPrefix(strings.ToLower(body), strings.ToLower(subject)) {
		body = strings.TrimLeft(body[len(subject):], " :\n")
	}

	if !strings.Contains(strings.ToLower(body), "stop") {
		if body == "" {
			body = OptOutSentence
		} else {
			body += "\n\n" + OptOutSentence
		}
	}

	return Draft{Subject: subject, Body: body}
}
