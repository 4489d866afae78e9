package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/studycrate/studycrate/internal/core/domain"
	"github.com/studycrate/studycrate/internal/core/port"
)

type PackageHandler struct {
	Handler
	service port.Service
}

func NewPackageHandler(service port.Service, logger *zap.Logger) (*PackageHandler, error) {
	return &PackageHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type facilityRequest struct {
	Country    string `json:"country" form:"country"`
	City       string `json:"city" form:"city"`
	Institute  string `json:"institute" form:"institute"`
	Faculty    string `json:"faculty" form:"faculty"`
	Course     string `json:"course" form:"course"`
	StudyGroup string `json:"study_group" form:"study_group"`
}

func (f facilityRequest) toDomain() domain.Facility {
	return domain.Facility{
		Country:    f.Country,
		City:       f.City,
		Institute:  f.Institute,
		Faculty:    f.Faculty,
		Course:     f.Course,
		StudyGroup: f.StudyGroup,
	}
}

type createPackageRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Facility    facilityRequest `json:"facility"`
}

type fileResp struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type packageResp struct {
	ID          uint64          `json:"id"`
	OwnerID     uint64          `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Facility    facilityRequest `json:"facility"`
	Files       []fileResp      `json:"files,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newPackageResp(pkg *domain.ContentPackage) packageResp {
	resp := packageResp{
		ID:          pkg.ID,
		OwnerID:     pkg.OwnerID,
		Title:       pkg.Title,
		Description: pkg.Description,
		Price:       pkg.Price,
		Facility: facilityRequest{
			Country:    pkg.Facility.Country,
			City:       pkg.Facility.City,
			Institute:  pkg.Facility.Institute,
			Faculty:    pkg.Facility.Faculty,
			Course:     pkg.Facility.Course,
			StudyGroup: pkg.Facility.StudyGroup,
		},
		CreatedAt: pkg.CreatedAt,
	}
	for _, f := range pkg.Files {
		resp.Files = append(resp.Files, fileResp{
			ID:         f.ID,
			Name:       f.Name,
			Size:       f.Size,
			UploadedAt: f.UploadedAt,
		})
	}
	return resp
}

func packageID(ctx *gin.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}

func (ph *PackageHandler) CreatePackage(ctx *gin.Context) {
	req := createPackageRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	price, err := decimal.NewFromFloat64(req.Price)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	pkg := &domain.ContentPackage{
		OwnerID:     getAuthPayload(ctx).UserID,
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
		Facility:    req.Facility.toDomain(),
	}

	created, err := ph.service.CreatePackage(ctx, pkg)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPackageResp(created), http.StatusCreated)
}

func (ph *PackageHandler) GetPackage(ctx *gin.Context) {
	id, err := packageID(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	pkg, err := ph.service.GetPackage(ctx, id)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPackageResp(pkg))
}

func (ph *PackageHandler) ListMyPackages(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := ph.service.ListPackagesByOwner(ctx, userID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]packageResp, 0, len(list))
	for _, pkg := range list {
		result = append(result, newPackageResp(pkg))
	}

	ph.handleSuccess(ctx, result)
}

// SearchPackages filters the catalog by the facility attributes given as
// query parameters; omitted attributes match everything.
func (ph *PackageHandler) SearchPackages(ctx *gin.Context) {
	filter := facilityRequest{}
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	list, err := ph.service.SearchPackages(ctx, filter.toDomain())
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]packageResp, 0, len(list))
	for _, pkg := range list {
		result = append(result, newPackageResp(pkg))
	}

	ph.handleSuccess(ctx, result)
}

func (ph *PackageHandler) UploadFile(ctx *gin.Context) {
	id, err := packageID(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	src, err := header.Open()
	if err != nil {
		ph.handleError(ctx, domain.ErrBadRequest)
		return
	}
	defer src.Close()

	file, err := ph.service.UploadFile(ctx, getAuthPayload(ctx).UserID, id, header.Filename, src)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, fileResp{
		ID:         file.ID,
		Name:       file.Name,
		Size:       file.Size,
		UploadedAt: file.UploadedAt,
	}, http.StatusCreated)
}

func (ph *PackageHandler) DownloadFile(ctx *gin.Context) {
	id, err := packageID(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	file, rc, err := ph.service.DownloadFile(ctx, getAuthPayload(ctx).UserID, id, ctx.Param("fileID"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	defer rc.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename=%q`, file.Name),
	}
	ctx.DataFromReader(http.StatusOK, file.Size, "application/octet-stream", rc, extraHeaders)
}
