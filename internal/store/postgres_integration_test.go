//go:build integration

package store_test

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"academy-api/internal/apperr"
	"academy-api/internal/auth"
	"academy-api/internal/models"
	"academy-api/internal/query"
	"academy-api/internal/store"
)

func strp(s string) *string { return &s }

var _ = Describe("Postgres store", Ordered, func() {
	var (
		ctx       context.Context
		container *postgres.PostgresContainer
		pool      *pgxpool.Pool
	)

	BeforeAll(func() {
		ctx = context.Background()

		var err error
		container, err = postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("academy_test"),
			postgres.WithUsername("academy"),
			postgres.WithPassword("academy"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		Expect(err).NotTo(HaveOccurred())

		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		Expect(err).NotTo(HaveOccurred())

		migrator, err := store.NewMigrator(connStr)
		Expect(err).NotTo(HaveOccurred())
		Expect(migrator.Up()).To(Succeed())
		Expect(migrator.Close()).To(Succeed())

		pool, err = store.Connect(ctx, connStr, 4, slog.Default())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterAll(func() {
		if pool != nil {
			pool.Close()
		}
		if container != nil {
			_ = container.Terminate(ctx)
		}
	})

	Describe("Players", func() {
		var players *store.Players

		BeforeAll(func() {
			players = store.NewPlayers(pool)
			for _, name := range []string{"Andi", "Budi", "Juan"} {
				_, err := players.Create(ctx, models.PlayerInput{Nama: name})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("matches names case-insensitively by substring", func() {
			page, err := players.List(ctx, models.PlayerFilter{Nama: "AN"}, query.Page{Number: 1, Size: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.TotalData).To(Equal(2))

			names := []string{}
			for _, p := range page.Data {
				names = append(names, p.Nama)
			}
			Expect(names).To(ConsistOf("Andi", "Juan"))
		})

		It("returns an empty page beyond the last one", func() {
			page, err := players.List(ctx, models.PlayerFilter{}, query.Page{Number: 3, Size: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Data).To(BeEmpty())
			Expect(page.TotalData).To(Equal(3))
			Expect(page.TotalPages).To(Equal(2))
		})

		It("defaults minutes_play to zero and formats dates", func() {
			p, err := players.Create(ctx, models.PlayerInput{Nama: "Citra", TanggalLahir: strp("2013-07-21")})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.MinutesPlay).To(BeZero())
			Expect(*p.TanggalLahir).To(Equal("2013-07-21"))
		})

		It("rejects negative minutes as a bad request", func() {
			_, err := players.Create(ctx, models.PlayerInput{Nama: "Dodi", MinutesPlay: -5})
			Expect(apperr.Code(err)).To(Equal(apperr.CodeBadRequest))
		})

		It("updates nothing for an unknown id", func() {
			rows, err := players.Update(ctx, 999999, models.PlayerPatch{Nama: strp("Ghost")})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})

	Describe("Schedules", func() {
		It("lists matches earliest first", func() {
			schedules := store.NewSchedules(pool)
			for _, in := range []models.ScheduleInput{
				{Lawan: "Late", Tanggal: "2026-09-01", Lokasi: "A"},
				{Lawan: "Early", Tanggal: "2026-01-15", Jam: strp("09:30"), Lokasi: "B"},
				{Lawan: "Middle", Tanggal: "2026-05-05", Lokasi: "C"},
			} {
				_, err := schedules.Create(ctx, in)
				Expect(err).NotTo(HaveOccurred())
			}

			list, err := schedules.List(ctx, models.ScheduleFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(3))
			Expect(list[0].Lawan).To(Equal("Early"))
			Expect(*list[0].Jam).To(Equal("09:30"))
			Expect(list[2].Lawan).To(Equal("Late"))
		})
	})

	Describe("Credentials", func() {
		It("finds admins regardless of email case", func() {
			creds := store.NewCredentials(pool)
			hash, err := auth.HashPassword("rahasia-sekali")
			Expect(err).NotTo(HaveOccurred())

			_, err = creds.Create(ctx, "Admin@Academy.id", hash)
			Expect(err).NotTo(HaveOccurred())

			got, err := creds.FindByEmail(ctx, "admin@academy.id")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.PasswordHash).To(Equal(hash))

			_, err = creds.Create(ctx, "admin@ACADEMY.id", hash)
			Expect(apperr.Code(err)).To(Equal(apperr.CodeBadRequest))

			_, err = creds.FindByEmail(ctx, "nobody@academy.id")
			Expect(err).To(MatchError(auth.ErrNotFound))
		})
	})
})
