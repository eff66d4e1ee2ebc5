package seed

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
	"github.com/BruksfildServices01/oficina-scheduler/internal/infra/repository"
)

var brt = time.FixedZone("BRT", -3*60*60)

func TestParse_EmbeddedSampleIsRelativeToToday(t *testing.T) {
	today := time.Date(2024, 6, 12, 15, 0, 0, 0, brt)

	ds, err := Load(context.Background(), EmbeddedSource{}, today)
	require.NoError(t, err)

	require.Len(t, ds.Branches, 2)
	require.Len(t, ds.Appointments, 20)

	first := ds.Appointments[0]
	assert.Equal(t, time.Date(2024, 6, 12, 8, 0, 0, 0, brt), first.ScheduledAt)
	assert.Equal(t, "Maria Santos", first.CustomerName)

	tomorrow := ds.Appointments[9]
	assert.Equal(t, time.Date(2024, 6, 13, 8, 0, 0, 0, brt), tomorrow.ScheduledAt)

	yesterday := ds.Appointments[19]
	assert.Equal(t, time.Date(2024, 6, 11, 10, 0, 0, 0, brt), yesterday.ScheduledAt)

	// the sample must build a valid store
	_, err = repository.NewAppointmentStore(ds.Appointments, ds.Branches)
	require.NoError(t, err)
}

func TestParse_AbsoluteTimestamps(t *testing.T) {
	doc := `{
		"branches": [{"id": "centro", "name": "Centro"}],
		"appointments": [
			{"id": 1, "scheduled_at": "2024-06-12T12:00:00Z", "duration_minutes": 30,
			 "customer_name": "A", "vehicle_description": "V", "service_name": "S", "branch_id": "centro"},
			{"id": 2, "date": "2024-06-13", "time": "09:30", "duration_minutes": 30,
			 "customer_name": "B", "vehicle_description": "V", "service_name": "S", "branch_id": "centro"}
		]
	}`

	ds, err := Parse([]byte(doc), time.Date(2030, 1, 1, 0, 0, 0, 0, brt))
	require.NoError(t, err)

	assert.Equal(t, 9, ds.Appointments[0].ScheduledAt.Hour())
	assert.Equal(t, brt, ds.Appointments[0].ScheduledAt.Location())
	assert.Equal(t, time.Date(2024, 6, 13, 9, 30, 0, 0, brt), ds.Appointments[1].ScheduledAt)
}

func TestParse_RejectsBadTimestamps(t *testing.T) {
	cases := []string{
		`{"appointments": [{"id": 1, "scheduled_at": "amanhã"}]}`,
		`{"appointments": [{"id": 1, "date": "2024-13-45", "time": "09:00"}]}`,
		`{"appointments": [{"id": 1, "day_offset": 1}]}`,
	}

	for _, doc := range cases {
		_, err := Parse([]byte(doc), time.Now())
		require.Error(t, err, doc)
		assert.True(t, httperr.IsBusiness(err, "invalid_timestamp"), err.Error())
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{"appointments": [], "owner": {}}`), time.Now())
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"branches": [], "appointments": []}`), 0o600))

	ds, err := Load(context.Background(), FileSource{Path: path}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, ds.Appointments)

	_, err = Load(context.Background(), FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}, time.Now())
	assert.Error(t, err)
}

type fakeGetter struct {
	body   string
	err    error
	bucket string
	key    string
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = *in.Bucket
	f.key = *in.Key
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3Source(t *testing.T) {
	getter := &fakeGetter{body: string(sampleJSON)}
	src := S3Source{Client: getter, Bucket: "oficina-seeds", Key: "dev/sample.json"}

	ds, err := Load(context.Background(), src, time.Now())
	require.NoError(t, err)
	assert.Len(t, ds.Appointments, 20)
	assert.Equal(t, "oficina-seeds", getter.bucket)
	assert.Equal(t, "dev/sample.json", getter.key)
	assert.Equal(t, "s3://oficina-seeds/dev/sample.json", src.Name())
}

func TestS3Source_Error(t *testing.T) {
	src := S3Source{Client: &fakeGetter{err: errors.New("access denied")}, Bucket: "b", Key: "k"}

	_, err := Load(context.Background(), src, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://b/k")
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := ParseS3URI("s3://oficina/seeds/sample.json")
	require.NoError(t, err)
	assert.Equal(t, "oficina", bucket)
	assert.Equal(t, "seeds/sample.json", key)

	_, _, err = ParseS3URI("s3://oficina")
	assert.Error(t, err)
	_, _, err = ParseS3URI("/tmp/x.json")
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource("", S3Options{})
	require.NoError(t, err)
	assert.IsType(t, EmbeddedSource{}, src)

	src, err = NewSource("./data/seed.json", S3Options{})
	require.NoError(t, err)
	assert.Equal(t, FileSource{Path: "./data/seed.json"}, src)

	src, err = NewSource("s3://oficina/sample.json", S3Options{Region: "sa-east-1", Endpoint: "http://localhost:9000"})
	require.NoError(t, err)
	s3src, ok := src.(S3Source)
	require.True(t, ok)
	assert.Equal(t, "oficina", s3src.Bucket)
	assert.NotNil(t, s3src.Client)

	_, err = NewSource("s3://", S3Options{})
	assert.Error(t, err)
}
