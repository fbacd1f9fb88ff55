package workflow_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/classpilot/backend/internal/assistant"
	"github.com/classpilot/backend/internal/classroom"
	"github.com/classpilot/backend/internal/progress"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClassroom records every mutation so tests can assert which steps ran.
type fakeClassroom struct {
	submissions []classroom.Submission
	lookupErr   error
	patchErr    error
	attachErr   error

	patchedGrades   []int
	patchedSubIDs   []string
	announcements   []string
	courseWork      []classroom.CourseWork
	attachedURLs    []string
	attachedSubIDs  []string
	announcementErr error
	courseWorkErr   error
}

func (f *fakeClassroom) GetSubmissions(ctx context.Context, courseID, courseworkID, studentID string) ([]classroom.Submission, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.submissions, nil
}

func (f *fakeClassroom) PatchGrade(ctx context.Context, courseID, courseworkID, submissionID string, grade int) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	f.patchedGrades = append(f.patchedGrades, grade)
	f.patchedSubIDs = append(f.patchedSubIDs, submissionID)
	return nil
}

func (f *fakeClassroom) CreateAnnouncement(ctx context.Context, courseID, text string) (string, error) {
	if f.announcementErr != nil {
		return "", f.announcementErr
	}
	f.announcements = append(f.announcements, text)
	return fmt.Sprintf("ann%d", len(f.announcements)), nil
}

func (f *fakeClassroom) CreateCourseWork(ctx context.Context, courseID string, cw classroom.CourseWork) (string, error) {
	if f.courseWorkErr != nil {
		return "", f.courseWorkErr
	}
	f.courseWork = append(f.courseWork, cw)
	return fmt.Sprintf("cw%d", len(f.courseWork)), nil
}

func (f *fakeClassroom) AttachLink(ctx context.Context, courseID, courseworkID, submissionID, url string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attachedURLs = append(f.attachedURLs, url)
	f.attachedSubIDs = append(f.attachedSubIDs, submissionID)
	return nil
}

// fakeRecorder is an in-memory progress log.
type fakeRecorder struct {
	records   []progress.Record
	appendErr error
}

func (f *fakeRecorder) Append(ctx context.Context, rec progress.Record) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeRecorder) List(ctx context.Context, courseID, studentID string) ([]progress.Record, error) {
	var out []progress.Record
	for _, rec := range f.records {
		if rec.CourseID == courseID && rec.StudentID == studentID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// fakeDocs counts publish steps and hands out one shareable URL.
type fakeDocs struct {
	created   int
	bodies    map[string]string
	shareURL  string
	createErr error
	bodyErr   error
	shareErr  error
}

func (f *fakeDocs) CreateDocument(ctx context.Context, title string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created++
	if f.bodies == nil {
		f.bodies = make(map[string]string)
	}
	return fmt.Sprintf("doc%d", f.created), nil
}

func (f *fakeDocs) SetBody(ctx context.Context, docID, text string) error {
	if f.bodyErr != nil {
		return f.bodyErr
	}
	f.bodies[docID] = text
	return nil
}

func (f *fakeDocs) ShareableURL(ctx context.Context, docID string) (string, error) {
	if f.shareErr != nil {
		return "", f.shareErr
	}
	return f.shareURL, nil
}

// fakeForms records form items.
type fakeForms struct {
	items        []assistant.QuizQuestion
	publishedURL string
	createErr    error
	itemErr      error
}

func (f *fakeForms) CreateForm(ctx context.Context, title string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return "form1", nil
}

func (f *fakeForms) AddQuizItem(ctx context.Context, formID string, q assistant.QuizQuestion) error {
	if f.itemErr != nil {
		return f.itemErr
	}
	f.items = append(f.items, q)
	return nil
}

func (f *fakeForms) PublishedURL(ctx context.Context, formID string) (string, error) {
	return f.publishedURL, nil
}

// fakeGenerator implements the generator interfaces with canned output.
type fakeGenerator struct {
	lesson    string
	feedback  string
	questions []assistant.QuizQuestion
	grade     int
	err       error
}

func (f *fakeGenerator) GenerateLesson(ctx context.Context, topic string) (string, error) {
	return f.lesson, f.err
}

func (f *fakeGenerator) GenerateFeedback(ctx context.Context, submission string) (string, error) {
	return f.feedback, f.err
}

func (f *fakeGenerator) GenerateQuiz(ctx context.Context, topic string, numQuestions int) ([]assistant.QuizQuestion, error) {
	return f.questions, f.err
}

func (f *fakeGenerator) Grade(ctx context.Context, submission, rubric string) (int, error) {
	return f.grade, f.err
}
