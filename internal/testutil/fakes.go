package testutil

import (
	"errors"
	"path"
	"slices"
	"strings"
	"sync"

	"foodgram-backend/internal/utils/mailing"
	"foodgram-backend/internal/utils/storage"
)

// TinyPNG is a 1x1 transparent PNG as a data URI.
const TinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

const fakeStorageHost = "https://cdn.example.com/"

var ErrFakeUpload = errors.New("fake upload failure")

// FakeStorage keeps uploaded objects in memory.
type FakeStorage struct {
	mu         sync.Mutex
	Objects    map[string][]byte
	FailUpload bool
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{Objects: map[string][]byte{}}
}

func (f *FakeStorage) UploadFile(fileName string, data []byte, contentType string, folder string, allowTypes ...string) (string, error) {
	if len(allowTypes) > 0 && !slices.Contains(allowTypes, contentType) {
		return "", storage.ErrContentTypeNotAllowed
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailUpload {
		return "", ErrFakeUpload
	}
	key := path.Join(folder, fileName)
	f.Objects[key] = data
	return key, nil
}

func (f *FakeStorage) DeleteFile(objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Objects, objectKey)
	return nil
}

func (f *FakeStorage) GetPublicLinkKey(objectKey string) string {
	return fakeStorageHost + objectKey
}

func (f *FakeStorage) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, fakeStorageHost) {
		return ""
	}
	return strings.TrimPrefix(link, fakeStorageHost)
}

func (f *FakeStorage) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Objects)
}

type SentMail struct {
	To          string
	Subject     string
	Body        string
	Attachments []mailing.Attachment
}

// FakeMailer records messages instead of sending them.
type FakeMailer struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error
}

func (f *FakeMailer) SendMail(toEmail string, subject string, body string, attachments ...mailing.Attachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, SentMail{To: toEmail, Subject: subject, Body: body, Attachments: attachments})
	return nil
}
