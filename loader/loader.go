package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/trip"
	"bikeshare/loader/config"
)

const loaderStage = "loader"

// columnIndexes maps each field to its position in the CSV header.
// Optional columns hold -1 when absent from the file
type columnIndexes struct {
	startTime    int
	endTime      int
	tripDuration int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

type Loader struct {
	config *config.LoaderConfig
}

func New(loaderConfig *config.LoaderConfig) *Loader {
	return &Loader{
		config: loaderConfig,
	}
}

// LoadDataset reads the CSV file of the given city into a Dataset. Start times
// are parsed and the derived month, weekday and start hour are recorded per
// trip. Rows with malformed mandatory fields are dropped; a file that cannot
// be opened or whose header lacks a mandatory column aborts the load
func (l *Loader) LoadDataset(city string) (*trip.Dataset, error) {
	filename, ok := l.config.CityFiles[city]
	if !ok {
		return nil, fmt.Errorf("%s: %w", city, ErrUnknownCity)
	}

	datasetPath := filepath.Join(l.config.DataDir, filename)
	datasetFile, err := os.Open(datasetPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", datasetPath, ErrDatasetNotFound)
	}
	defer datasetFile.Close()

	reader := csv.NewReader(datasetFile)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read header of %s: %w", datasetPath, ErrMalformedDataset)
	}

	indexes, err := l.mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, ErrMalformedDataset)
	}

	dataset := &trip.Dataset{
		City:         city,
		HasGender:    indexes.gender >= 0,
		HasBirthYear: indexes.birthYear >= 0,
	}

	skippedRows := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skippedRows++
			log.Debugf("[stage: %s][city: %s] skipping unreadable row: %s", loaderStage, city, err.Error())
			continue
		}

		tripRecord, err := l.getTripRecord(row, indexes)
		if err != nil {
			skippedRows++
			log.Debugf("[stage: %s][city: %s] skipping invalid row: %s", loaderStage, city, err.Error())
			continue
		}

		dataset.Records = append(dataset.Records, *tripRecord)
	}

	log.Infof("[stage: %s][city: %s][status: OK] loaded %v trips (%v rows skipped)",
		loaderStage, city, dataset.Len(), skippedRows)

	return dataset, nil
}

// mapColumns resolves each configured column name to its header position.
// Gender and Birth Year are optional, every other column is mandatory
func (l *Loader) mapColumns(header []string) (columnIndexes, error) {
	indexes := columnIndexes{
		startTime:    indexOf(l.config.Columns.StartTime, header),
		endTime:      indexOf(l.config.Columns.EndTime, header),
		tripDuration: indexOf(l.config.Columns.TripDuration, header),
		startStation: indexOf(l.config.Columns.StartStation, header),
		endStation:   indexOf(l.config.Columns.EndStation, header),
		userType:     indexOf(l.config.Columns.UserType, header),
		gender:       indexOf(l.config.Columns.Gender, header),
		birthYear:    indexOf(l.config.Columns.BirthYear, header),
	}

	mandatory := map[string]int{
		l.config.Columns.StartTime:    indexes.startTime,
		l.config.Columns.EndTime:      indexes.endTime,
		l.config.Columns.TripDuration: indexes.tripDuration,
		l.config.Columns.StartStation: indexes.startStation,
		l.config.Columns.EndStation:   indexes.endStation,
		l.config.Columns.UserType:     indexes.userType,
	}
	for columnName, index := range mandatory {
		if index < 0 {
			return columnIndexes{}, fmt.Errorf("%s: %w", columnName, ErrMissingColumn)
		}
	}

	return indexes, nil
}

func (l *Loader) getTripRecord(row []string, indexes columnIndexes) (*trip.TripRecord, error) {
	startTime, err := time.Parse(l.config.TimeLayout, row[indexes.startTime])
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrInvalidDate, row[indexes.startTime], ErrInvalidTripData)
	}

	endTime, err := time.Parse(l.config.TimeLayout, row[indexes.endTime])
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrInvalidDate, row[indexes.endTime], ErrInvalidTripData)
	}

	duration, err := strconv.ParseFloat(row[indexes.tripDuration], 64)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrInvalidDurationType, row[indexes.tripDuration], ErrInvalidTripData)
	}
	if duration < 0.0 {
		return nil, fmt.Errorf("negative duration %v: %w", duration, ErrInvalidTripData)
	}

	tripRecord := &trip.TripRecord{
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: row[indexes.startStation],
		EndStation:   row[indexes.endStation],
		UserType:     row[indexes.userType],
		Month:        startTime.Month(),
		Weekday:      startTime.Weekday(),
		StartHour:    startTime.Hour(),
	}

	if indexes.gender >= 0 {
		tripRecord.Gender = row[indexes.gender]
	}

	if indexes.birthYear >= 0 && row[indexes.birthYear] != "" {
		// pandas exports write Birth Year as a float, e.g. "1992.0"
		birthYear, err := strconv.ParseFloat(row[indexes.birthYear], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid birth year %q: %w", row[indexes.birthYear], ErrInvalidTripData)
		}
		tripRecord.BirthYear = int(birthYear)
	}

	return tripRecord, nil
}

func indexOf(columnName string, header []string) int {
	for i := range header {
		if header[i] == columnName {
			return i
		}
	}
	return -1
}
