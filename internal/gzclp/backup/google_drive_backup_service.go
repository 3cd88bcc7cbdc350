package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/2beens/gzclp/internal/gzclp/history"
)

const (
	rootBackupsFolderName = "gzclp-history-backup"
	entriesFileChunkSize  = 500 // number of history entries in one backup file
)

type historySource interface {
	List(ctx context.Context, params history.ListParams) ([]history.Entry, error)
}

// GoogleDriveBackupService mirrors the progression history to a folder
// on Google Drive, as chunked JSON files. Each run backs up only the
// entries recorded after the newest existing backup file.
type GoogleDriveBackupService struct {
	historyRepo     historySource
	service         *drive.Service
	backupsFolderId string
}

func NewGoogleDriveBackupService(
	ctx context.Context,
	credentialsJson []byte,
	historyRepo historySource,
) (*GoogleDriveBackupService, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJson))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	rootFolderQuery := fmt.Sprintf(
		"mimeType = 'application/vnd.google-apps.folder' and trashed = false and name = '%s'",
		rootBackupsFolderName,
	)
	backupFolders, err := driveService.
		Files.List().
		Q(rootFolderQuery).
		Fields("files(id, name)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve files: %w", err)
	}

	backupsFolderId := ""
	if len(backupFolders.Files) > 0 {
		rbf := backupFolders.Files[0]
		if len(backupFolders.Files) > 1 {
			log.Printf("attention: found %d root backups folders, will take the first one: %s", len(backupFolders.Files), rbf.Id)
		}
		log.Printf("root backups folder found, %s: %s", rbf.Name, rbf.Id)
		backupsFolderId = rbf.Id
	}

	s := &GoogleDriveBackupService{
		historyRepo: historyRepo,
		service:     driveService,
	}

	if backupsFolderId == "" {
		log.Println("root backups folder not found, recreating ...")
		backupsFolderId, err = s.createRootBackupsFolder()
		if err != nil {
			return nil, fmt.Errorf("failed to create root backups folder: %w", err)
		}
		log.Printf("new root backups folder created: %s", backupsFolderId)
	}

	s.backupsFolderId = backupsFolderId

	return s, nil
}

// Reinit wipes the whole backup folder and backs up everything again.
func (s *GoogleDriveBackupService) Reinit(ctx context.Context, baseTime time.Time) error {
	log.Println("gzclp history backup reinit starting ...")

	err := s.service.Files.
		Delete(s.backupsFolderId).
		Do()
	if err != nil {
		return err
	}

	backupsFolderId, err := s.createRootBackupsFolder()
	if err != nil {
		return fmt.Errorf("failed to create root backups folder: %w", err)
	}
	log.Printf("new root backups folder created: %s", backupsFolderId)
	s.backupsFolderId = backupsFolderId

	return s.DoBackup(ctx, baseTime)
}

func (s *GoogleDriveBackupService) DoBackup(ctx context.Context, baseTime time.Time) error {
	currentBackupFiles, err := s.getBackupFiles(s.backupsFolderId)
	if err != nil {
		return err
	}

	lastBackupAt := time.Time{}
	for _, file := range currentBackupFiles {
		createdAt, err := time.Parse(time.RFC3339, file.CreatedTime)
		if err != nil {
			log.Printf(" ---> error parsing created at for file %s: %s", file.Name, err)
			continue
		}
		log.Printf(" -- [%v]: %s (%s)", createdAt, file.Name, file.Id)
		if createdAt.After(lastBackupAt) {
			lastBackupAt = createdAt
		}
	}

	allEntries, err := s.historyRepo.List(ctx, history.ListParams{})
	if err != nil {
		return fmt.Errorf("failed to get history entries: %w", err)
	}

	// only the entries recorded after the newest backup file
	var entriesToBackup []history.Entry
	for _, entry := range allEntries {
		if entry.RecordedAt.After(lastBackupAt) {
			entriesToBackup = append(entriesToBackup, entry)
		}
	}

	if len(entriesToBackup) == 0 {
		log.Println("no new history entries to backup, done")
		return nil
	}

	log.Printf(" ---- backing up %d history entries since %v", len(entriesToBackup), lastBackupAt)

	baseFileName := fmt.Sprintf("gzclp-history-%d-%d-%d", baseTime.Day(), baseTime.Month(), baseTime.Year())
	fileCounter := 1
	for {
		nameExists := false
		for _, file := range currentBackupFiles {
			if file.Name == fmt.Sprintf("%s_1.json", baseFileName) {
				nameExists = true
				break
			}
		}
		if nameExists {
			fileCounter++
			baseFileName = fmt.Sprintf("%s_%d", baseFileName, fileCounter)
		} else {
			break
		}
	}

	if err := s.backupEntries(entriesToBackup, baseFileName); err != nil {
		return fmt.Errorf("failed to backup history entries: %w", err)
	}

	log.Printf("next backup since %v successfully saved: %s", lastBackupAt, baseFileName)

	return nil
}

func (s *GoogleDriveBackupService) createRootBackupsFolder() (string, error) {
	backupsFolderMeta := &drive.File{
		Name:     rootBackupsFolderName,
		MimeType: "application/vnd.google-apps.folder",
	}

	bfRes, err := s.service.
		Files.Create(backupsFolderMeta).
		Fields("id").
		Do()
	if err != nil {
		return "", err
	}

	return bfRes.Id, nil
}

func (s *GoogleDriveBackupService) backupEntries(entries []history.Entry, baseFileName string) error {
	chunks := len(entries) / entriesFileChunkSize
	if len(entries)%entriesFileChunkSize > 0 {
		chunks++
	}

	fromIndex := 0
	for i := 1; i <= chunks; i++ {
		toIndex := fromIndex + entriesFileChunkSize
		if toIndex > len(entries) {
			toIndex = len(entries)
		}
		nextFileName := fmt.Sprintf("%s_%d.json", baseFileName, i)
		nextEntries := entries[fromIndex:toIndex]

		log.Printf("%s: create backup file with %d history entries [from %d to %d] ...", nextFileName, len(nextEntries), fromIndex, toIndex)

		entriesJson, err := json.Marshal(nextEntries)
		if err != nil {
			return fmt.Errorf("marshal entries for %s: %w", nextFileName, err)
		}

		backupFileMeta := &drive.File{
			Name:     nextFileName,
			MimeType: "application/json",
			Parents:  []string{s.backupsFolderId},
		}
		_, err = s.service.
			Files.Create(backupFileMeta).
			Fields("id, parents").
			Media(bytes.NewReader(entriesJson)).
			Do()
		if err != nil {
			return fmt.Errorf("create backup file %s: %w", nextFileName, err)
		}

		fromIndex = toIndex
	}

	return nil
}

func (s *GoogleDriveBackupService) getBackupFiles(backupsFolderId string) ([]*drive.File, error) {
	filesQuery := fmt.Sprintf(
		"'%s' in parents and mimeType != 'application/vnd.google-apps.folder' and trashed = false",
		backupsFolderId,
	)
	backups, err := s.service.
		Files.List().
		Q(filesQuery).
		Fields("files(id, name, createdTime)").
		Do()
	if err != nil {
		return nil, err
	}

	return backups.Files, nil
}
