package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/repository"
	"estagiohub/internal/infra/persistence/model"
)

// internshipRepository implements the domain's InternshipRepository interface using GORM.
type internshipRepository struct {
	db *gorm.DB
}

// NewInternshipRepository is the constructor for internshipRepository.
func NewInternshipRepository(db *gorm.DB) repository.InternshipRepository {
	return &internshipRepository{db: db}
}

// Create persists a new internship request with its organization snapshot and
// activity plan.
func (repo *internshipRepository) Create(ctx context.Context, internship *entity.Internship) error {
	internshipM := fromInternshipDomain(internship)

	if err := repo.db.WithContext(ctx).Create(internshipM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("internship references a missing student or supervisor")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create internship")
	}

	internship.ID = internshipM.ID
	internship.Version = internshipM.Version
	internship.CreatedAt = internshipM.CreatedAt
	internship.UpdatedAt = internshipM.UpdatedAt

	return nil
}

// FindByID retrieves an internship with its student, supervisor, activity plan
// and documents loaded.
func (repo *internshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Internship, error) {
	var internshipM model.InternshipModel
	err := repo.db.WithContext(ctx).
		Preload("Student.User").
		Preload("Supervisor.User").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("internship_tasks.position")
		}).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("internship_documents.created_at")
		}).
		First(&internshipM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInternshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find internship by id")
	}

	return toInternshipDomain(&internshipM), nil
}

// FindByDocumentID retrieves the internship owning the given document.
func (repo *internshipRepository) FindByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Internship, error) {
	var documentM model.InternshipDocumentModel
	err := repo.db.WithContext(ctx).
		Select("internship_id").
		First(&documentM, "id = ?", documentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document owner")
	}

	return repo.FindByID(ctx, documentM.InternshipID)
}

// FindByStudentID retrieves every internship of a student, newest first.
func (repo *internshipRepository) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]*entity.Internship, error) {
	var internshipMs []model.InternshipModel
	err := repo.db.WithContext(ctx).
		Preload("Student.User").
		Preload("Supervisor.User").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("internship_tasks.position")
		}).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("internship_documents.created_at")
		}).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&internshipMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find internships by student")
	}

	return toInternshipDomainSlice(internshipMs), nil
}

// Update persists the current state of an internship under an optimistic-lock
// guard: the row is only written when it still carries the version the entity
// was read at, and the version is bumped in the same statement. The activity
// plan is replaced wholesale since tasks carry no identity of their own.
func (repo *internshipRepository) Update(ctx context.Context, internship *entity.Internship) error {
	internshipM := fromInternshipDomain(internship)

	result := repo.db.WithContext(ctx).
		Model(&model.InternshipModel{}).
		Where("id = ? AND version = ?", internship.ID, internship.Version).
		Updates(map[string]any{
			"status":                       internshipM.Status,
			"org_cnpj":                     internshipM.OrgCnpj,
			"org_corporate_name":           internshipM.OrgCorporateName,
			"org_business_name":            internshipM.OrgBusinessName,
			"org_phone1":                   internshipM.OrgPhone1,
			"org_phone2":                   internshipM.OrgPhone2,
			"org_website":                  internshipM.OrgWebsite,
			"org_addr_street":              internshipM.OrgAddrStreet,
			"org_addr_number":              internshipM.OrgAddrNumber,
			"org_addr_additional_info":     internshipM.OrgAddrAdditionalInfo,
			"org_addr_district":            internshipM.OrgAddrDistrict,
			"org_addr_city":                internshipM.OrgAddrCity,
			"org_addr_state":               internshipM.OrgAddrState,
			"org_addr_postal_code":         internshipM.OrgAddrPostalCode,
			"org_supervisor_name":          internshipM.OrgSupervisorName,
			"org_supervisor_email":         internshipM.OrgSupervisorEmail,
			"org_supervisor_position":      internshipM.OrgSupervisorPosition,
			"division":                     internshipM.Division,
			"classification":               internshipM.Classification,
			"monthly_stipend":              internshipM.MonthlyStipend,
			"transportation_aid":           internshipM.TransportationAid,
			"work_situation":               internshipM.WorkSituation,
			"weekday_start_time":           internshipM.WeekdayStartTime,
			"weekday_end_time":             internshipM.WeekdayEndTime,
			"weekday_secondary_start_time": internshipM.WeekdaySecondaryStartTime,
			"weekday_secondary_end_time":   internshipM.WeekdaySecondaryEndTime,
			"saturday_start_time":          internshipM.SaturdayStartTime,
			"saturday_end_time":            internshipM.SaturdayEndTime,
			"period_start_date":            internshipM.PeriodStartDate,
			"period_expected_end_date":     internshipM.PeriodExpectedEndDate,
			"close_reason":                 internshipM.CloseReason,
			"version":                      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update internship")
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or someone else wrote it first. Distinguish
		// so callers can tell the user to reload instead of reporting a 404.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.InternshipModel{}).
			Where("id = ?", internship.ID).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check internship existence")
		}
		if count == 0 {
			return repository.ErrInternshipNotFound
		}

		return repository.ErrVersionConflict
	}

	if err := repo.replaceTasks(ctx, internship.ID, internship.Tasks); err != nil {
		return err
	}

	internship.Version++

	return nil
}

// replaceTasks deletes and reinserts the ordered activity plan.
func (repo *internshipRepository) replaceTasks(ctx context.Context, internshipID uuid.UUID, tasks []entity.Task) error {
	err := repo.db.WithContext(ctx).
		Where("internship_id = ?", internshipID).
		Delete(&model.InternshipTaskModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear internship tasks")
	}

	if len(tasks) == 0 {
		return nil
	}

	taskMs := fromTasksDomain(internshipID, tasks)
	if err := repo.db.WithContext(ctx).Create(&taskMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert internship tasks")
	}

	return nil
}

// HasActiveInternship reports whether the student owns an internship that
// still counts as interning.
func (repo *internshipRepository) HasActiveInternship(ctx context.Context, studentID uuid.UUID) (bool, error) {
	released := []string{
		entity.StatusCanceled.String(),
		entity.StatusClosed.String(),
		entity.StatusRejected.String(),
		entity.StatusFinished.String(),
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.InternshipModel{}).
		Where("student_id = ? AND status NOT IN ?", studentID, released).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count active internships")
	}

	return count > 0, nil
}

// Search matches the term as a case-insensitive substring over the people and
// company fields of each internship, paginated and newest first.
func (repo *internshipRepository) Search(ctx context.Context, filter repository.SearchInternshipsFilter) ([]*entity.Internship, error) {
	like := "%" + filter.Term + "%"

	var internshipMs []model.InternshipModel
	err := repo.db.WithContext(ctx).
		Joins("Student").
		Joins("Student.User").
		Joins("Supervisor").
		Joins("Supervisor.User").
		Where(`"Student".full_name ILIKE ?
			OR "Student__User".email ILIKE ?
			OR "Supervisor".name ILIKE ?
			OR "Supervisor__User".email ILIKE ?
			OR internships.org_supervisor_name ILIKE ?
			OR internships.org_supervisor_email ILIKE ?
			OR internships.division ILIKE ?
			OR CAST(internships.monthly_stipend AS TEXT) ILIKE ?`,
			like, like, like, like, like, like, like, like).
		Order("internships.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&internshipMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search internships")
	}

	// Joins loads the flat associations; tasks and documents still need a
	// second round-trip per page.
	ids := make([]uuid.UUID, 0, len(internshipMs))
	for i := range internshipMs {
		ids = append(ids, internshipMs[i].ID)
	}
	if len(ids) > 0 {
		byID := make(map[uuid.UUID]*model.InternshipModel, len(internshipMs))
		for i := range internshipMs {
			byID[internshipMs[i].ID] = &internshipMs[i]
		}

		var taskMs []model.InternshipTaskModel
		err = repo.db.WithContext(ctx).
			Where("internship_id IN ?", ids).
			Order("position").
			Find(&taskMs).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to load internship tasks")
		}
		for i := range taskMs {
			owner := byID[taskMs[i].InternshipID]
			owner.Tasks = append(owner.Tasks, taskMs[i])
		}

		var documentMs []model.InternshipDocumentModel
		err = repo.db.WithContext(ctx).
			Where("internship_id IN ?", ids).
			Order("created_at").
			Find(&documentMs).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to load internship documents")
		}
		for i := range documentMs {
			owner := byID[documentMs[i].InternshipID]
			owner.Documents = append(owner.Documents, documentMs[i])
		}
	}

	return toInternshipDomainSlice(internshipMs), nil
}

// --- Mapper Functions ---

func toInternshipDomain(data *model.InternshipModel) *entity.Internship {
	if data == nil {
		return nil
	}

	internship := &entity.Internship{
		ID:           data.ID,
		StudentID:    data.StudentID,
		SupervisorID: data.SupervisorID,
		Status:       entity.InternshipStatus(data.Status),
		Organization: entity.Organization{
			CNPJ:          data.OrgCnpj,
			CorporateName: data.OrgCorporateName,
			BusinessName:  data.OrgBusinessName,
			Phone1:        data.OrgPhone1,
			Phone2:        data.OrgPhone2,
			Website:       data.OrgWebsite,
			Address: entity.Address{
				Street:         data.OrgAddrStreet,
				Number:         data.OrgAddrNumber,
				AdditionalInfo: data.OrgAddrAdditionalInfo,
				District:       data.OrgAddrDistrict,
				City:           data.OrgAddrCity,
				State:          data.OrgAddrState,
				PostalCode:     data.OrgAddrPostalCode,
			},
		},
		OrganizationSupervisor: entity.OrganizationSupervisor{
			Name:     data.OrgSupervisorName,
			Email:    data.OrgSupervisorEmail,
			Position: data.OrgSupervisorPosition,
		},
		Division:          data.Division,
		Classification:    entity.Classification(data.Classification),
		MonthlyStipend:    data.MonthlyStipend,
		TransportationAid: data.TransportationAid,
		WorkSituation:     entity.WorkSituation(data.WorkSituation),
		WeeklyHours: entity.WeeklyHours{
			MondayToFriday: entity.TimeRange{
				StartTime: data.WeekdayStartTime,
				EndTime:   data.WeekdayEndTime,
			},
			MondayToFridaySecondary: toTimeRange(data.WeekdaySecondaryStartTime, data.WeekdaySecondaryEndTime),
			Saturday:                toTimeRange(data.SaturdayStartTime, data.SaturdayEndTime),
		},
		Period: entity.Period{
			StartDate:       data.PeriodStartDate,
			ExpectedEndDate: data.PeriodExpectedEndDate,
		},
		CloseReason: data.CloseReason,
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Student.ID != uuid.Nil {
		internship.Student = *toStudentDomain(&data.Student)
	}
	if data.Supervisor.ID != uuid.Nil {
		internship.Supervisor = *toSupervisorDomain(&data.Supervisor)
	}

	for i := range data.Tasks {
		internship.Tasks = append(internship.Tasks, entity.Task{
			Name:        data.Tasks[i].Name,
			Description: data.Tasks[i].Description,
		})
	}
	for i := range data.Documents {
		internship.Documents = append(internship.Documents, *toDocumentDomain(&data.Documents[i]))
	}

	return internship
}

func toInternshipDomainSlice(data []model.InternshipModel) []*entity.Internship {
	internships := make([]*entity.Internship, 0, len(data))
	for i := range data {
		internships = append(internships, toInternshipDomain(&data[i]))
	}

	return internships
}

func fromInternshipDomain(data *entity.Internship) *model.InternshipModel {
	if data == nil {
		return nil
	}

	internshipM := &model.InternshipModel{
		ID:           data.ID,
		StudentID:    data.StudentID,
		SupervisorID: data.SupervisorID,
		Status:       data.Status.String(),

		OrgCnpj:               data.Organization.CNPJ,
		OrgCorporateName:      data.Organization.CorporateName,
		OrgBusinessName:       data.Organization.BusinessName,
		OrgPhone1:             data.Organization.Phone1,
		OrgPhone2:             data.Organization.Phone2,
		OrgWebsite:            data.Organization.Website,
		OrgAddrStreet:         data.Organization.Address.Street,
		OrgAddrNumber:         data.Organization.Address.Number,
		OrgAddrAdditionalInfo: data.Organization.Address.AdditionalInfo,
		OrgAddrDistrict:       data.Organization.Address.District,
		OrgAddrCity:           data.Organization.Address.City,
		OrgAddrState:          data.Organization.Address.State,
		OrgAddrPostalCode:     data.Organization.Address.PostalCode,

		OrgSupervisorName:     data.OrganizationSupervisor.Name,
		OrgSupervisorEmail:    data.OrganizationSupervisor.Email,
		OrgSupervisorPosition: data.OrganizationSupervisor.Position,

		Division:          data.Division,
		Classification:    string(data.Classification),
		MonthlyStipend:    data.MonthlyStipend,
		TransportationAid: data.TransportationAid,
		WorkSituation:     string(data.WorkSituation),

		WeekdayStartTime: data.WeeklyHours.MondayToFriday.StartTime,
		WeekdayEndTime:   data.WeeklyHours.MondayToFriday.EndTime,

		PeriodStartDate:       data.Period.StartDate,
		PeriodExpectedEndDate: data.Period.ExpectedEndDate,

		CloseReason: data.CloseReason,
		Version:     data.Version,
	}

	if second := data.WeeklyHours.MondayToFridaySecondary; second != nil {
		internshipM.WeekdaySecondaryStartTime = &second.StartTime
		internshipM.WeekdaySecondaryEndTime = &second.EndTime
	}
	if saturday := data.WeeklyHours.Saturday; saturday != nil {
		internshipM.SaturdayStartTime = &saturday.StartTime
		internshipM.SaturdayEndTime = &saturday.EndTime
	}

	internshipM.Tasks = fromTasksDomain(data.ID, data.Tasks)

	return internshipM
}

func toTimeRange(start, end *int) *entity.TimeRange {
	if start == nil || end == nil {
		return nil
	}

	return &entity.TimeRange{StartTime: *start, EndTime: *end}
}

func fromTasksDomain(internshipID uuid.UUID, tasks []entity.Task) []model.InternshipTaskModel {
	taskMs := make([]model.InternshipTaskModel, 0, len(tasks))
	for i, task := range tasks {
		taskMs = append(taskMs, model.InternshipTaskModel{
			InternshipID: internshipID,
			Position:     i,
			Name:         task.Name,
			Description:  task.Description,
		})
	}

	return taskMs
}
