package archive_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"roster-hub/core/archive"
	"roster-hub/core/reconcile"
	"roster-hub/core/roster"
	"roster-hub/core/storage"
	"roster-hub/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func testConfig() storage.Config {
	return storage.Config{Bucket: "roster", Prefix: "/snapshots/", Retain: 2}
}

func testSnapshot() *roster.Snapshot {
	ts := roster.NewTimestamp(created)
	return &roster.Snapshot{
		Entities: roster.Entities{
			Orgs: []roster.Org{{
				Base: roster.Base{SourcedID: "sis_org_SCH001", Status: roster.StatusActive, DateLastModified: ts},
				Name: "Main Street Elementary",
				Type: roster.OrgTypeSchool,
			}},
			Users: []roster.User{{
				Base: roster.Base{
					SourcedID:        "sis_user_student_S1001",
					Status:           roster.StatusActive,
					DateLastModified: ts,
					Metadata:         roster.Metadata{roster.MetaLMSUsername: "alice_w_student"},
				},
				Username:        "awonderland",
				Role:            roster.RoleStudent,
				AgentSourcedIDs: []string{"sis_org_SCH001"},
			}},
		},
		CreatedAt: created,
	}
}

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

// listingFunc returns a fresh listing on every ListObjects call.
func listingFunc(keys ...string) func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		return listing(keys...)
	}
}

func TestArchive_Key(t *testing.T) {
	a := archive.New(new(mocks.Client), testConfig(), nil)
	assert.Equal(t, "snapshots/20241001T120000.000000Z.json", a.Key(created))
}

func TestArchive_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	a := archive.New(client, testConfig(), nil)

	var uploaded [][]byte
	capture := func(args mock.Arguments) {
		data, _ := io.ReadAll(args.Get(3).(io.Reader))
		uploaded = append(uploaded, data)
	}
	client.On("PutObject", ctx, "roster", "snapshots/20241001T120000.000000Z.json", mock.Anything, mock.Anything, mock.Anything).
		Run(capture).Return(minio.UploadInfo{}, nil).Once()
	client.On("PutObject", ctx, "roster", "snapshots/latest.json", mock.Anything, mock.Anything, mock.Anything).
		Run(capture).Return(minio.UploadInfo{}, nil).Once()

	key, err := a.Save(ctx, testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "snapshots/20241001T120000.000000Z.json", key)
	require.Len(t, uploaded, 2)
	assert.Equal(t, uploaded[0], uploaded[1])

	var doc map[string]any
	require.NoError(t, json.Unmarshal(uploaded[0], &doc))
	assert.Equal(t, "2024-10-01T12:00:00Z", doc["createdAt"])
	assert.Contains(t, doc, "orgs")
	assert.Contains(t, doc, "academicSessions")

	client.On("GetObject", ctx, "roster", "snapshots/latest.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(bytes.NewReader(uploaded[1])), nil)

	snap, err := a.Latest(ctx)
	require.NoError(t, err)
	assert.True(t, created.Equal(snap.CreatedAt))
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "alice_w_student", snap.Users[0].Metadata[roster.MetaLMSUsername])
	assert.True(t, created.Equal(snap.Orgs[0].DateLastModified.Time))
	client.AssertExpectations(t)
}

func TestArchive_SaveFails(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	a := archive.New(client, testConfig(), nil)

	client.On("PutObject", ctx, "roster", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("quota exceeded"))

	_, err := a.Save(ctx, testSnapshot())
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestArchive_LatestMissing(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	a := archive.New(client, testConfig(), nil)

	client.On("GetObject", ctx, "roster", "snapshots/latest.json", minio.GetObjectOptions{}).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "missing"})

	_, err := a.Latest(ctx)
	assert.ErrorIs(t, err, archive.ErrNoSnapshot)
}

func TestArchive_ListAndPrune(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	a := archive.New(client, testConfig(), nil)

	opts := minio.ListObjectsOptions{Prefix: "snapshots/", Recursive: true}
	client.On("ListObjects", ctx, "roster", opts).Return(listingFunc(
		"snapshots/20241001T120300.000000Z.json",
		"snapshots/latest.json",
		"snapshots/20241001T120000.000000Z.json",
		"snapshots/20241001T120200.000000Z.json",
		"snapshots/20241001T120100.000000Z.json",
		"snapshots/notes.txt",
	))

	keys, err := a.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"snapshots/20241001T120000.000000Z.json",
		"snapshots/20241001T120100.000000Z.json",
		"snapshots/20241001T120200.000000Z.json",
		"snapshots/20241001T120300.000000Z.json",
	}, keys)

	var removed []string
	client.On("RemoveObjects", ctx, "roster", mock.Anything, minio.RemoveObjectsOptions{}).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		}).Return(nil)

	n, err := a.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{
		"snapshots/20241001T120000.000000Z.json",
		"snapshots/20241001T120100.000000Z.json",
	}, removed)
	client.AssertNumberOfCalls(t, "ListObjects", 2)
}

func TestArchive_Observe(t *testing.T) {
	ctx := context.Background()

	t.Run("SkipsFailedRuns", func(t *testing.T) {
		client := new(mocks.Client)
		a := archive.New(client, testConfig(), nil)

		a.Observe(ctx, reconcile.Run{Status: reconcile.RunFailed, Error: "boom"})
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SavesAndPrunes", func(t *testing.T) {
		client := new(mocks.Client)
		a := archive.New(client, testConfig(), nil)

		client.On("PutObject", ctx, "roster", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil).Twice()
		client.On("ListObjects", ctx, "roster", mock.Anything).Return(listing("snapshots/20241001T120000.000000Z.json"))

		a.Observe(ctx, reconcile.Run{ID: "run-1", Status: reconcile.RunSucceeded, Snapshot: testSnapshot()})
		client.AssertExpectations(t)
		client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
