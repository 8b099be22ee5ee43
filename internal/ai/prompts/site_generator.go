package prompts

// GetProjectGenerationPrompt returns the template for the initial project
// generation call. The layout it demands is exactly what the response
// parser understands: four ordered marker headings and name-tagged fenced
// code blocks. Keep the two in sync.
func GetProjectGenerationPrompt() string {
	return `
		You are a full-stack web project generator AI.

		A user has submitted the following project description:

		---
		"%s"
		---

		Please create a **multi-file web project** based on the following rules:

		1.  **Stack**: plain HTML, CSS and JavaScript only. No build step,
			no framework. The project must run when index.html is opened
			in a browser.
		2.  **Entry file**: there must be a file named exactly index.html
			that references the other files with relative paths
			(e.g. <link href="style.css">, <script src="app.js">).
		3.  **Response layout**: answer with exactly these four sections,
			in this order, using these exact headings:

			### 4.1. Header Block
			One short paragraph summarizing the generated project.

			### 4.2. Project Structure
			A plain-text tree of the files you created.

			### 4.3. Code Files
			Every file as a fenced code block. The opening fence must be
			three backticks followed by the language tag, a colon, and the
			relative file path, e.g.:
			` + "```" + `html:index.html
			...file content...
			` + "```" + `

			The closing fence must be three backticks on their own line.

			### 4.4. Notes
			Brief notes on choices made or follow-ups the user may want.

		4.  Do not repeat the section headings anywhere inside a section's
			content. Do not add any text before the first heading or after
			the last section.
	`
}
