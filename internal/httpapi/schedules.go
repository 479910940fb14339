package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-api/internal/media"
	"academy-api/internal/models"
)

const tableSchedules = "jadwal"

type scheduleForm struct {
	Lawan            *string `json:"lawan" form:"lawan"`
	Tanggal          *string `json:"tanggal" form:"tanggal" binding:"omitempty,datetime=2006-01-02"`
	Jam              *string `json:"jam" form:"jam"`
	Lokasi           *string `json:"lokasi" form:"lokasi"`
	TipePertandingan *string `json:"tipe_pertandingan" form:"tipe_pertandingan"`
}

// GET /api/jadwal?lawan&tanggal
// Not paginated; earliest match first.
func ListSchedules(schedules ScheduleStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := schedules.List(c.Request.Context(), models.ScheduleFilter{
			Lawan:   c.Query("lawan"),
			Tanggal: c.Query("tanggal"),
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    rows,
		})
	}
}

func CreateSchedule(schedules ScheduleStore, up media.Uploader, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form scheduleForm
		if err := bind(c, &form); err != nil {
			fail(c, err)
			return
		}
		lawan, err := required("lawan", form.Lawan)
		if err != nil {
			fail(c, err)
			return
		}
		tanggal, err := required("tanggal", form.Tanggal)
		if err != nil {
			fail(c, err)
			return
		}
		lokasi, err := required("lokasi", form.Lokasi)
		if err != nil {
			fail(c, err)
			return
		}

		asset, err := uploadPhoto(c, up)
		if err != nil {
			fail(c, err)
			return
		}

		s, err := schedules.Create(c.Request.Context(), models.ScheduleInput{
			Lawan:            lawan,
			Tanggal:          tanggal,
			Jam:              optional(form.Jam),
			Lokasi:           lokasi,
			TipePertandingan: optional(form.TipePertandingan),
			FotoURL:          photoURL(asset),
		})
		if err != nil {
			discardPhoto(c, up, logger, asset)
			fail(c, err)
			return
		}

		audit(c, logger, "create", tableSchedules, s.ID)
		c.JSON(http.StatusCreated, s)
	}
}

func UpdateSchedule(schedules ScheduleStore, up media.Uploader, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			fail(c, err)
			return
		}
		var form scheduleForm
		if err := bind(c, &form); err != nil {
			fail(c, err)
			return
		}

		patch := models.SchedulePatch{
			Jam:              trimmed(form.Jam),
			TipePertandingan: trimmed(form.TipePertandingan),
		}
		for _, f := range []struct {
			name string
			in   *string
			out  **string
		}{
			{"lawan", form.Lawan, &patch.Lawan},
			{"tanggal", form.Tanggal, &patch.Tanggal},
			{"lokasi", form.Lokasi, &patch.Lokasi},
		} {
			if *f.out, err = notBlank(f.name, f.in); err != nil {
				fail(c, err)
				return
			}
		}

		asset, err := uploadPhoto(c, up)
		if err != nil {
			fail(c, err)
			return
		}
		patch.FotoURL = photoURL(asset)

		rows, err := schedules.Update(c.Request.Context(), id, patch)
		if err != nil || len(rows) == 0 {
			discardPhoto(c, up, logger, asset)
		}
		if err != nil {
			fail(c, err)
			return
		}

		audit(c, logger, "update", tableSchedules, id, "matched", len(rows))
		c.JSON(http.StatusOK, gin.H{
			"message": "Jadwal berhasil diperbarui",
			"data":    rows,
		})
	}
}

func DeleteSchedule(schedules ScheduleStore, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			fail(c, err)
			return
		}

		n, err := schedules.Delete(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}

		audit(c, logger, "delete", tableSchedules, id, "deleted", n)
		c.JSON(http.StatusOK, gin.H{"message": "Jadwal berhasil dihapus"})
	}
}
