// ABOUTME: Backup and restore of words.json and date.json through Charm KV
// ABOUTME: Documents are stored verbatim under doc:<file name> keys
package charm

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"

	"github.com/harper/wordbook/internal/store"
)

// Documents lists the files that are backed up, in push order.
var Documents = []string{store.WordsFile, store.DatesFile}

// documentKey returns the KV key for a document.
func documentKey(name string) []byte {
	return []byte(DocumentPrefix + name)
}

// PushResult reports which documents were uploaded.
type PushResult struct {
	Pushed  []string
	Skipped []string
}

// PullResult reports which documents were restored.
type PullResult struct {
	Restored []string
	Missing  []string
}

// Push copies every local document into the KV store in one transaction.
// Documents that do not exist locally yet are skipped.
func (c *Client) Push(files *store.Files) (*PushResult, error) {
	result := &PushResult{}
	payloads := make(map[string][]byte)

	for _, name := range Documents {
		data, ok, err := files.Read(files.Path(name))
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("%w: refusing to back up invalid %s", store.ErrParse, name)
		}
		payloads[name] = data
		result.Pushed = append(result.Pushed, name)
	}

	if len(payloads) == 0 {
		return result, nil
	}

	err := c.Do(func(k *kv.KV) error {
		for _, name := range result.Pushed {
			if err := k.Set(documentKey(name), payloads[name]); err != nil {
				return fmt.Errorf("set %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("push documents: %w", err)
	}
	return result, nil
}

// DocumentStatus reports whether a document has a backup.
type DocumentStatus struct {
	Name     string
	BackedUp bool
	Size     int
}

// Status reports which documents are present in the KV store.
func (c *Client) Status() ([]DocumentStatus, error) {
	payloads, _, err := fetchDocuments(c.Get)
	if err != nil {
		return nil, err
	}

	statuses := make([]DocumentStatus, 0, len(Documents))
	for _, name := range Documents {
		data, ok := payloads[name]
		statuses = append(statuses, DocumentStatus{Name: name, BackedUp: ok, Size: len(data)})
	}
	return statuses, nil
}

// Pull overwrites local documents with their backed-up copies. Documents
// absent from the KV store are left untouched locally.
func (c *Client) Pull(files *store.Files) (*PullResult, error) {
	return pullDocuments(files, c.Get)
}

func pullDocuments(files *store.Files, get func(key []byte) ([]byte, error)) (*PullResult, error) {
	payloads, missing, err := fetchDocuments(get)
	if err != nil {
		return nil, err
	}

	result := &PullResult{Missing: missing}
	for _, name := range Documents {
		data, ok := payloads[name]
		if !ok {
			continue
		}
		if err := restoreDocument(files, name, data); err != nil {
			return nil, err
		}
		result.Restored = append(result.Restored, name)
	}
	return result, nil
}

// fetchDocuments reads every document key. A missing key is reported in
// the second return value rather than as an error.
func fetchDocuments(get func(key []byte) ([]byte, error)) (map[string][]byte, []string, error) {
	payloads := make(map[string][]byte)
	var missing []string

	for _, name := range Documents {
		data, err := get(documentKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			missing = append(missing, name)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("get %s: %w", name, err)
		}
		payloads[name] = data
	}
	return payloads, missing, nil
}

// restoreDocument validates a backed-up document against its store type
// before it replaces the local file.
func restoreDocument(files *store.Files, name string, data []byte) error {
	var err error
	switch name {
	case store.WordsFile:
		var words []store.Word
		err = json.Unmarshal(data, &words)
	case store.DatesFile:
		var days []store.DailyActivity
		err = json.Unmarshal(data, &days)
	default:
		return fmt.Errorf("%w: unknown document %s", store.ErrInvalidArgument, name)
	}
	if err != nil {
		return fmt.Errorf("%w: backed-up %s: %w", store.ErrParse, name, err)
	}

	return files.Write(files.Path(name), data)
}
