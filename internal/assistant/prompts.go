package assistant

import "fmt"

// Prompt builders — kept short and directive. Each action pairs a fixed
// system message with one user message interpolating the caller's input.
// The JSON schema always comes last so it is the last thing the model sees.

const lessonSystemPrompt = `You are an experienced teacher preparing lesson material. Write clear, well-structured content suitable for presenting to a class.`

const quizSystemPrompt = `You are a teacher writing multiple-choice quizzes. Every question must have exactly one correct answer, and that answer must appear verbatim among the options.`

const feedbackSystemPrompt = `You are a supportive teacher reviewing student work. Point out what was done well, what needs improvement, and one concrete next step. Keep the tone encouraging.`

const gradeSystemPrompt = `You are grading student work against a rubric. Be consistent and strict: award points only for requirements the submission actually meets.`

func buildLessonPrompt(topic string) string {
	return fmt.Sprintf(`Write lesson content for a class on the following topic. Include an introduction, the key concepts, and a short summary.

TOPIC:
%s`, topic)
}

func buildQuizPrompt(topic string, numQuestions int) string {
	return fmt.Sprintf(`Write %d multiple-choice questions about the following topic. Each question needs 4 options and exactly one correct answer taken verbatim from the options.

TOPIC:
%s

Respond with ONLY this JSON — no explanation, no markdown:
[{"question": "...", "options": ["...", "...", "...", "..."], "answer": "..."}]`, numQuestions, topic)
}

func buildFeedbackPrompt(submission string) string {
	return fmt.Sprintf(`Write feedback for the student who submitted the work below.

SUBMISSION:
%s`, submission)
}

func buildGradePrompt(submission, rubric string) string {
	return fmt.Sprintf(`Grade the submission below against the rubric.

RUBRIC:
%s

SUBMISSION:
%s

Respond with ONLY an integer between 0 and 100 — no explanation, no punctuation.`, rubric, submission)
}
