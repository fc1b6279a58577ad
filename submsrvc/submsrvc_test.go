package submsrvc

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/classroomsrvc"
	"github.com/patowari/tapuze-backend/evalsrvc"
	"github.com/patowari/tapuze-backend/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSrvcErrCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}

// fakeDirectory stands in for the classroom store in unit tests.
type fakeDirectory struct {
	classroomID uuid.UUID
	known       uuid.UUID
	increments  int
}

func (d *fakeDirectory) AssignmentClassroom(ctx context.Context, assignmentID uuid.UUID) (uuid.UUID, error) {
	if assignmentID != d.known {
		return uuid.UUID{}, classroomsrvc.ErrAssignmentNotFound()
	}
	return d.classroomID, nil
}

func (d *fakeDirectory) IncrementSubmissions(ctx context.Context, assignmentID uuid.UUID) error {
	if assignmentID != d.known {
		return classroomsrvc.ErrAssignmentNotFound()
	}
	d.increments++
	return nil
}

func newTestSrvc(t *testing.T) (*SubmissionSrvc, *fakeDirectory) {
	t.Helper()
	dir := &fakeDirectory{
		classroomID: uuid.New(),
		known:       uuid.New(),
	}
	return NewSubmissionSrvc(dir), dir
}

func textFile(name, content string) FileUpload {
	return FileUpload{Name: name, Type: "text/plain", Content: []byte(content)}
}

func TestCreateSubmission(t *testing.T) {
	s, dir := newTestSrvc(t)

	subm, err := s.CreateSubmission(context.Background(), CreateSubmissionParams{
		AssignmentID: dir.known,
		StudentID:    "S12345",
		StudentName:  "Ann",
		Files:        []FileUpload{textFile("hw.txt", "my answers")},
	})
	require.NoError(t, err)

	assert.Equal(t, dir.classroomID, subm.ClassroomID)
	assert.Equal(t, StatusSubmitted, subm.Status)
	assert.False(t, subm.SubmittedAt.IsZero())
	assert.Equal(t, 1, dir.increments)

	require.Len(t, subm.Files, 1)
	assert.Equal(t, int64(len("my answers")), subm.Files[0].Size)

	listed, err := s.ListForAssignment(context.Background(), dir.known)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, subm.ID, listed[0].ID)
}

func TestCreateSubmissionValidation(t *testing.T) {
	s, dir := newTestSrvc(t)

	_, err := s.CreateSubmission(context.Background(), CreateSubmissionParams{
		AssignmentID: dir.known,
		StudentID:    "S12345",
	})
	assertSrvcErrCode(t, err, ErrCodeNoFilesAttached)

	_, err = s.CreateSubmission(context.Background(), CreateSubmissionParams{
		AssignmentID: uuid.New(),
		StudentID:    "S12345",
		Files:        []FileUpload{textFile("hw.txt", "x")},
	})
	assertSrvcErrCode(t, err, classroomsrvc.ErrCodeAssignmentNotFound)
	assert.Equal(t, 0, dir.increments)
}

func TestListForAssignmentKeepsInsertionOrder(t *testing.T) {
	s, dir := newTestSrvc(t)

	for _, student := range []string{"S11111", "S22222", "S33333"} {
		_, err := s.CreateSubmission(context.Background(), CreateSubmissionParams{
			AssignmentID: dir.known,
			StudentID:    student,
			Files:        []FileUpload{textFile("hw.txt", student)},
		})
		require.NoError(t, err)
	}

	listed, err := s.ListForAssignment(context.Background(), dir.known)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "S11111", listed[0].StudentID)
	assert.Equal(t, "S22222", listed[1].StudentID)
	assert.Equal(t, "S33333", listed[2].StudentID)
	assert.Equal(t, 3, dir.increments)
}

func TestFileContentRoundtrip(t *testing.T) {
	s, dir := newTestSrvc(t)
	content := bytes.Repeat([]byte("the same line over and over\n"), 200)

	subm, err := s.CreateSubmission(context.Background(), CreateSubmissionParams{
		AssignmentID: dir.known,
		StudentID:    "S12345",
		Files:        []FileUpload{{Name: "essay.txt", Type: "text/plain", Content: content}},
	})
	require.NoError(t, err)

	got, err := s.FileContent(context.Background(), subm.ID, "essay.txt")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = s.FileContent(context.Background(), subm.ID, "missing.txt")
	assertSrvcErrCode(t, err, ErrCodeFileNotFound)

	_, err = s.FileContent(context.Background(), uuid.New(), "essay.txt")
	assertSrvcErrCode(t, err, ErrCodeSubmissionNotFound)
}

func TestIntakeSniffsMimeType(t *testing.T) {
	s, dir := newTestSrvc(t)

	subm, err := s.CreateSubmission(context.Background(), CreateSubmissionParams{
		AssignmentID: dir.known,
		StudentID:    "S12345",
		Files:        []FileUpload{{Name: "scan", Content: encodePNG(t, 40, 40)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", subm.Files[0].Type)
}

func TestImageAttachmentGetsThumbnail(t *testing.T) {
	s, dir := newTestSrvc(t)

	subm, err := s.CreateSubmission(context.Background(), CreateSubmissionParams{
		AssignmentID: dir.known,
		StudentID:    "S12345",
		Files: []FileUpload{
			{Name: "page1.png", Type: "image/png", Content: encodePNG(t, 800, 600)},
			textFile("notes.txt", "no preview for text"),
		},
	})
	require.NoError(t, err)

	thumb, err := s.FileThumbnail(context.Background(), subm.ID, "page1.png")
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 240)

	_, err = s.FileThumbnail(context.Background(), subm.ID, "notes.txt")
	assertSrvcErrCode(t, err, ErrCodeFileNotFound)
}

func TestAttachEvaluation(t *testing.T) {
	s, dir := newTestSrvc(t)
	subm, err := s.CreateSubmission(context.Background(), CreateSubmissionParams{
		AssignmentID: dir.known,
		StudentID:    "S12345",
		Files:        []FileUpload{textFile("hw.txt", "x")},
	})
	require.NoError(t, err)

	// no evaluation yet: nil, not an error
	eval, err := s.Evaluation(context.Background(), subm.ID)
	require.NoError(t, err)
	assert.Nil(t, eval)

	attached := evalsrvc.Evaluation{
		OverallScore: 90,
		Problems: []evalsrvc.Problem{{
			Description: evalsrvc.BilingualText{EN: "Derivatives", HE: "נגזרות"},
			Score:       9,
			MaxScore:    10,
			Errors:      []evalsrvc.ProblemError{},
		}},
		Sync: evalsrvc.SyncSynced,
	}
	require.NoError(t, s.AttachEvaluation(context.Background(), subm.ID, attached))

	got, err := s.GetSubmission(context.Background(), subm.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusEvaluated, got.Status)
	require.NotNil(t, got.Evaluation)
	assert.Equal(t, 90, got.Evaluation.OverallScore)

	eval, err = s.Evaluation(context.Background(), subm.ID)
	require.NoError(t, err)
	require.NotNil(t, eval)
	assert.Equal(t, evalsrvc.SyncSynced, eval.Sync)

	// unknown ids are reported, never silently ignored
	err = s.AttachEvaluation(context.Background(), uuid.New(), attached)
	assertSrvcErrCode(t, err, ErrCodeSubmissionNotFound)
	_, err = s.Evaluation(context.Background(), uuid.New())
	assertSrvcErrCode(t, err, ErrCodeSubmissionNotFound)
}

func TestDeleteCascadesWithClassroomStore(t *testing.T) {
	classrooms := classroomsrvc.NewClassroomSrvc()
	s := NewSubmissionSrvc(classrooms)
	classrooms.SetSubmissionCascader(s)

	classroom, err := classrooms.CreateClassroom(context.Background(), classroomsrvc.CreateClassroomParams{
		Name: "Math", Code: "ABC123"})
	require.NoError(t, err)
	hw1, err := classrooms.CreateAssignment(context.Background(), classroomsrvc.CreateAssignmentParams{
		ClassroomID: classroom.ID, Title: "Homework 1"})
	require.NoError(t, err)
	hw2, err := classrooms.CreateAssignment(context.Background(), classroomsrvc.CreateAssignmentParams{
		ClassroomID: classroom.ID, Title: "Homework 2"})
	require.NoError(t, err)

	for _, aID := range []uuid.UUID{hw1.ID, hw1.ID, hw2.ID} {
		_, err := s.CreateSubmission(context.Background(), CreateSubmissionParams{
			AssignmentID: aID,
			StudentID:    "S12345",
			Files:        []FileUpload{textFile("hw.txt", "x")},
		})
		require.NoError(t, err)
	}

	// deleting one assignment removes only its submissions
	require.NoError(t, classrooms.DeleteAssignment(context.Background(), hw1.ID))
	left, err := s.ListForAssignment(context.Background(), hw1.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	left, err = s.ListForAssignment(context.Background(), hw2.ID)
	require.NoError(t, err)
	assert.Len(t, left, 1)

	// deleting the classroom leaves no submissions behind at all
	require.NoError(t, classrooms.DeleteClassroom(context.Background(), classroom.ID))
	left, err = s.ListForAssignment(context.Background(), hw2.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
