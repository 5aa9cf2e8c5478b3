// Package main provides a read-only inspector for the badger store.
//
// Usage:
//
//	DATA_PATH=~/NoteVault go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/cemcobancem/notevault/internal/domain"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/NoteVault")
	}
	dbPath := filepath.Join(dataPath, "db")

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== NoteVault Inspection ===")
	fmt.Println()

	inspectNotes(db)
	inspectTasks(db)
	inspectNotebooks(db)
}

func inspectNotes(db *badger.DB) {
	count := 0
	pinned := 0
	archived := 0
	recordings := 0

	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("note:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			key := string(it.Item().Key())
			if strings.HasPrefix(key, "note:idx:") {
				continue
			}

			err := it.Item().Value(func(val []byte) error {
				var note domain.Note
				if err := json.Unmarshal(val, &note); err != nil {
					return err
				}
				count++
				if note.Pinned {
					pinned++
				}
				if note.Archived {
					archived++
				}
				recordings += len(note.AudioRecordings)
				if count <= 3 {
					fmt.Printf("Note: %s\n", note.Title)
					fmt.Printf("  ID: %s\n", note.ID)
					fmt.Printf("  Updated: %s\n", note.UpdatedAt)
					fmt.Printf("  Recordings: %d\n", len(note.AudioRecordings))
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to scan notes: %v", err)
	}

	fmt.Printf("\nNotes: %d total, %d pinned, %d archived, %d recordings\n\n", count, pinned, archived, recordings)
}

func inspectTasks(db *badger.DB) {
	count := 0
	byStatus := map[domain.Status]int{}

	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("task:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			key := string(it.Item().Key())
			if strings.HasPrefix(key, "task:idx:") {
				continue
			}

			err := it.Item().Value(func(val []byte) error {
				var task domain.Task
				if err := json.Unmarshal(val, &task); err != nil {
					return err
				}
				count++
				byStatus[task.Status]++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to scan tasks: %v", err)
	}

	fmt.Printf("Tasks: %d total, %d open, %d done\n\n", count, byStatus[domain.StatusOpen], byStatus[domain.StatusDone])
}

func inspectNotebooks(db *badger.DB) {
	count := 0

	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("notebook:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			key := string(it.Item().Key())
			if strings.HasPrefix(key, "notebook:idx:") {
				continue
			}

			err := it.Item().Value(func(val []byte) error {
				var nb domain.Notebook
				if err := json.Unmarshal(val, &nb); err != nil {
					return err
				}
				count++
				fmt.Printf("Notebook: %s (%s)\n", nb.Name, nb.Color)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to scan notebooks: %v", err)
	}

	fmt.Printf("Notebooks: %d total\n", count)
}
