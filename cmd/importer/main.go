package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"location-agent/internal/config"
	"location-agent/internal/journey"
	"location-agent/internal/models"
	"location-agent/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the places CSV file to import (name,address,lat,lon)")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	log.Info().Str("file", *file).Msg("starting import")

	places, err := parseCSV(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing CSV")
	}

	log.Info().Int("records", len(places)).Msg("parsed places")

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required for the importer")
	}

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Ensure table exists
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating table")
	}

	before, err := repo.CountPlaces(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error counting places")
	}

	// Insert records
	inserted, err := repo.InsertPlaces(ctx, places)
	if err != nil {
		log.Fatal().Err(err).Msg("error inserting places")
	}

	// Verify data
	after, err := repo.CountPlaces(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error counting places")
	}
	if after-before != int64(len(places)) {
		log.Fatal().Int64("expected", int64(len(places))).Int64("got", after-before).Msg("record count mismatch")
	}

	log.Info().Int64("inserted", inserted).Int64("total", after).Msg("import finished")
}

func parseCSV(filePath string) ([]models.Place, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readPlaces(file)
}

// readPlaces reads name,address,lat,lon rows after a header line.
func readPlaces(r io.Reader) ([]models.Place, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var places []models.Place
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) < 4 {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected 4 columns", line, len(record))
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[2])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[3])
		}

		if err := (journey.Coordinate{Latitude: lat, Longitude: lon}).Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty name", line)
		}

		places = append(places, models.Place{
			Name:      name,
			Address:   strings.TrimSpace(record[1]),
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return places, nil
}
