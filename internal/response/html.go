package response

import "strings"

// htmlTemplate is the fixed document every HTML response is built from. The
// two placeholders are the only variable parts.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>{title}</title>
</head>
<body>
    <h1>{content}</h1>
</body>
</html>
`

// HTML builds a text/html response by literal substring substitution into the
// fixed template. Nothing is escaped here; callers must pre-sanitize
// untrusted content.
func HTML(title, content string, code StatusCode) Response {
	body := strings.Replace(htmlTemplate, "{title}", title, 1)
	body = strings.Replace(body, "{content}", content, 1)

	return Response{
		StatusCode:  code,
		ContentType: "text/html",
		Body:        body,
	}
}
