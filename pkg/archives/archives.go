package archives

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexmullins/zip"
	"github.com/dsnet/compress/bzip2"
)

var errNoFiles = errors.New("no files to archive")

// CreateArchive bundles fileList into archivePath. The archive type follows the
// extension: .zip, .tar.gz/.tgz or .tar.bz2. A password is only supported for zip.
func CreateArchive(archivePath string, fileList []string, password string) error {
	name := strings.ToLower(archivePath)
	switch {
	case strings.HasSuffix(name, ".zip"):
		if password != "" {
			return CreateEncryptedZipArchive(archivePath, fileList, password)
		}
		return CreateZipArchive(archivePath, fileList)
	case password != "":
		return fmt.Errorf("password protection needs a .zip archive, got %s", filepath.Base(archivePath))
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return CreateTarGzipArchive(archivePath, fileList)
	case strings.HasSuffix(name, ".tar.bz2"):
		return CreateTarBzip2Archive(archivePath, fileList)
	default:
		return fmt.Errorf("unsupported archive type %s", filepath.Base(archivePath))
	}
}

func CreateTarBzip2Archive(archivePath string, fileList []string) error {
	if len(fileList) == 0 {
		return errNoFiles
	}

	archive, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer archive.Close()

	bzipWriter, err := bzip2.NewWriter(archive, &bzip2.WriterConfig{
		Level: bzip2.BestCompression,
	})
	if err != nil {
		return fmt.Errorf("failed to create bzip2 writer: %w", err)
	}
	defer bzipWriter.Close()

	tarWriter := tar.NewWriter(bzipWriter)
	defer tarWriter.Close()

	for _, filePath := range fileList {
		if err := addFileToTarArchive(filePath, tarWriter); err != nil {
			return fmt.Errorf("failed to add file %s to archive: %w", filePath, err)
		}
	}

	if err := tarWriter.Close(); err != nil {
		return fmt.Errorf("failed to close tar writer: %w", err)
	}
	if err := bzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to close bzip2 writer: %w", err)
	}
	if err := archive.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	return nil
}

func CreateTarGzipArchive(archivePath string, fileList []string) error {
	if len(fileList) == 0 {
		return errNoFiles
	}

	archive, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer archive.Close()

	gzipWriter := gzip.NewWriter(archive)
	defer gzipWriter.Close()

	tarWriter := tar.NewWriter(gzipWriter)
	defer tarWriter.Close()

	for _, filePath := range fileList {
		if err := addFileToTarArchive(filePath, tarWriter); err != nil {
			return fmt.Errorf("failed to add file %s to archive: %w", filePath, err)
		}
	}

	if err := tarWriter.Close(); err != nil {
		return fmt.Errorf("failed to close tar writer: %w", err)
	}
	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	if err := archive.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	return nil
}

func CreateZipArchive(archivePath string, fileList []string) error {
	return createZip(archivePath, fileList, "")
}

// CreateEncryptedZipArchive protects every entry with password (WinZip AES).
func CreateEncryptedZipArchive(archivePath string, fileList []string, password string) error {
	if password == "" {
		return errors.New("empty archive password")
	}
	return createZip(archivePath, fileList, password)
}

func createZip(archivePath string, fileList []string, password string) error {
	if len(fileList) == 0 {
		return errNoFiles
	}

	archive, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer archive.Close()

	zipWriter := zip.NewWriter(archive)
	defer zipWriter.Close()

	for _, filePath := range fileList {
		if err := addFileToZipArchive(filePath, zipWriter, password); err != nil {
			return fmt.Errorf("failed to add file %s to archive: %w", filePath, err)
		}
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("failed to close zip writer: %w", err)
	}
	if err := archive.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	return nil
}

func addFileToTarArchive(filePath string, tarWriter *tar.Writer) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info for %s: %w", filePath, err)
	}

	header, err := tar.FileInfoHeader(info, info.Name())
	if err != nil {
		return fmt.Errorf("failed to create tar header for %s: %w", filePath, err)
	}
	header.Name = filepath.Base(filePath)

	if err := tarWriter.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write tar header for %s: %w", filePath, err)
	}

	if _, err := io.Copy(tarWriter, file); err != nil {
		return fmt.Errorf("failed to write file content for %s: %w", filePath, err)
	}
	return nil
}

func addFileToZipArchive(filePath string, zipWriter *zip.Writer, password string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info for %s: %w", filePath, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("failed to create zip header for %s: %w", filePath, err)
	}
	header.Name = filepath.Base(filePath)
	header.Method = zip.Deflate
	if password != "" {
		header.SetPassword(password)
	}

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to write zip header for %s: %w", filePath, err)
	}

	if _, err := io.Copy(writer, file); err != nil {
		return fmt.Errorf("failed to write file content for %s: %w", filePath, err)
	}
	return nil
}
