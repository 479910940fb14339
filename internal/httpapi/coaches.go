package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-api/internal/media"
	"academy-api/internal/models"
	"academy-api/internal/query"
)

const tableCoaches = "pelatih"

type coachForm struct {
	Nama    *string `json:"nama" form:"nama"`
	Lisensi *string `json:"lisensi" form:"lisensi"`
}

// GET /api/pelatih?page&pageSize&nama&lisensi
func ListCoaches(coaches CoachStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := query.ParsePage(c.Query("page"), c.Query("pageSize"))
		if err != nil {
			fail(c, err)
			return
		}

		env, err := coaches.List(c.Request.Context(), models.CoachFilter{
			Nama:    c.Query("nama"),
			Lisensi: c.Query("lisensi"),
		}, p)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, env)
	}
}

func CreateCoach(coaches CoachStore, up media.Uploader, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form coachForm
		if err := bind(c, &form); err != nil {
			fail(c, err)
			return
		}
		nama, err := required("nama", form.Nama)
		if err != nil {
			fail(c, err)
			return
		}

		asset, err := uploadPhoto(c, up)
		if err != nil {
			fail(c, err)
			return
		}

		coach, err := coaches.Create(c.Request.Context(), models.CoachInput{
			Nama:    nama,
			Lisensi: optional(form.Lisensi),
			FotoURL: photoURL(asset),
		})
		if err != nil {
			discardPhoto(c, up, logger, asset)
			fail(c, err)
			return
		}

		audit(c, logger, "create", tableCoaches, coach.ID)
		c.JSON(http.StatusCreated, coach)
	}
}

func UpdateCoach(coaches CoachStore, up media.Uploader, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			fail(c, err)
			return
		}
		var form coachForm
		if err := bind(c, &form); err != nil {
			fail(c, err)
			return
		}
		nama, err := notBlank("nama", form.Nama)
		if err != nil {
			fail(c, err)
			return
		}

		asset, err := uploadPhoto(c, up)
		if err != nil {
			fail(c, err)
			return
		}

		rows, err := coaches.Update(c.Request.Context(), id, models.CoachPatch{
			Nama:    nama,
			Lisensi: trimmed(form.Lisensi),
			FotoURL: photoURL(asset),
		})
		if err != nil || len(rows) == 0 {
			discardPhoto(c, up, logger, asset)
		}
		if err != nil {
			fail(c, err)
			return
		}

		audit(c, logger, "update", tableCoaches, id, "matched", len(rows))
		c.JSON(http.StatusOK, gin.H{
			"message": "Pelatih berhasil diperbarui",
			"data":    rows,
		})
	}
}

func DeleteCoach(coaches CoachStore, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			fail(c, err)
			return
		}

		n, err := coaches.Delete(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}

		audit(c, logger, "delete", tableCoaches, id, "deleted", n)
		c.JSON(http.StatusOK, gin.H{"message": "Pelatih berhasil dihapus"})
	}
}
