package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"grandhotel/config"
	"grandhotel/infras/kafka"
	"grandhotel/infras/mailer"
	"grandhotel/infras/otel"
	"grandhotel/internal/domains/booking/model"
	"grandhotel/internal/domains/booking/model/dto"
	"grandhotel/internal/domains/booking/repository"
	guestDto "grandhotel/internal/domains/guest/model/dto"
	guestService "grandhotel/internal/domains/guest/service"
	roomModel "grandhotel/internal/domains/room/model"
	roomRepo "grandhotel/internal/domains/room/repository"
	"grandhotel/shared"
	"grandhotel/shared/cache"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"
	"grandhotel/shared/keylock"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CreateCustomerBooking(ctx context.Context, req dto.CustomerBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	GetByEmail(ctx context.Context, email string) ([]dto.BookingResponse, error)
	Cancel(ctx context.Context, id int64) (dto.BookingResponse, error)
	CancelCustomerBooking(ctx context.Context, id int64, email string) (dto.BookingResponse, error)
	IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	CheckAvailability(ctx context.Context, checkIn, checkOut string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestSvc  guestService.Guest
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	kafka     kafka.Client
	mailer    mailer.Mailer
	roomLocks *keylock.KeyLock
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestSvc guestService.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
	mail mailer.Mailer,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestSvc:  guestSvc,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		kafka:     kafkaClient,
		mailer:    mail,
		roomLocks: keylock.New(),
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := parseStayRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	if checkIn.Before(timezone.Today()) {
		return res, failure.BadRequestFromString("check-in date cannot be in the past") // nolint:wrapcheck
	}

	if _, err = s.guestSvc.Get(ctx, req.GuestID); err != nil {
		if failure.IsNotFound(err) {
			return res, failure.BadRequestFromString("guest does not exist") // nolint:wrapcheck
		}

		return res, err
	}

	if err = s.ensureRoomBookable(ctx, req.RoomID); err != nil {
		return res, err
	}

	lockKey := roomLockKey(req.RoomID)
	s.roomLocks.Lock(lockKey)
	defer s.roomLocks.Unlock(lockKey)

	available, err := s.IsRoomAvailable(ctx, req.RoomID, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	if !available {
		return res, failure.Conflict("room is not available for the selected dates") // nolint:wrapcheck
	}

	return s.insertBooking(ctx, req.ToModel(user, checkIn, checkOut))
}

// CreateCustomerBooking books a room from the guest-facing surface. The guest
// profile is found or created by email and the room is locked so the
// availability check and the insert behave as one step.
func (s *serviceImpl) CreateCustomerBooking(ctx context.Context, req dto.CustomerBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCustomerBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := parseStayRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	if checkIn.Before(timezone.Today()) {
		return res, failure.BadRequestFromString("check-in date cannot be in the past") // nolint:wrapcheck
	}

	if err = s.ensureRoomBookable(ctx, req.RoomID); err != nil {
		return res, err
	}

	lockKey := roomLockKey(req.RoomID)
	s.roomLocks.Lock(lockKey)
	defer s.roomLocks.Unlock(lockKey)

	available, err := s.IsRoomAvailable(ctx, req.RoomID, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	if !available {
		return res, failure.Conflict("room is not available for the selected dates") // nolint:wrapcheck
	}

	guest, err := s.guestSvc.FindOrCreate(ctx, guestDto.CreateGuestRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return res, err
	}

	mod := model.Booking{
		GuestID:      guest.ID,
		RoomID:       req.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   req.TotalPrice,
		Status:       constant.BookingStatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	return s.insertBooking(ctx, mod)
}

func (s *serviceImpl) insertBooking(ctx context.Context, mod model.Booking) (res dto.BookingResponse, err error) {
	id, err := s.repo.Insert(ctx, mod)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	// Re-read to hydrate the guest and room columns for the response.
	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load created booking")

		return res, fmt.Errorf("failed to load created booking: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishBookingEvent(c, constant.EventBookingCreated, created)

		if err := s.mailer.SendBookingConfirmation(c, created.GuestEmail, mailer.BookingNotice{
			GuestName:          created.GuestName(),
			RoomNumber:         created.RoomNumber,
			RoomType:           created.RoomType,
			CheckIn:            created.CheckInDate.Format(constant.StayDateFormat),
			CheckOut:           created.CheckOutDate.Format(constant.StayDateFormat),
			TotalPrice:         created.TotalPrice,
			ConfirmationNumber: model.ConfirmationNumber(created.ID),
		}); err != nil {
			log.Error().Err(err).Msg("failed to send booking confirmation mail")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// GetByEmail lists a guest's bookings oldest first, each carrying its
// confirmation number.
func (s *serviceImpl) GetByEmail(ctx context.Context, email string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by email")

		return res, fmt.Errorf("failed to get bookings by email: %w", err)
	}

	res = make([]dto.BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

// Cancel removes a booking and returns its last known state.
func (s *serviceImpl) Cancel(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return s.cancel(ctx, booking)
}

// CancelCustomerBooking cancels a booking only when it belongs to the given
// email. An ownership mismatch is indistinguishable from a missing booking.
func (s *serviceImpl) CancelCustomerBooking(ctx context.Context, id int64, email string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelCustomerBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 || !strings.EqualFold(booking.GuestEmail, email) {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return s.cancel(ctx, booking)
}

func (s *serviceImpl) cancel(ctx context.Context, booking model.Booking) (res dto.BookingResponse, err error) {
	if err := s.repo.Delete(ctx, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = constant.BookingStatusCancelled
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishBookingEvent(c, constant.EventBookingCancelled, booking)

		if err := s.mailer.SendCancellationNotice(c, booking.GuestEmail, mailer.CancellationNotice{
			GuestName:  booking.GuestName(),
			RoomNumber: booking.RoomNumber,
			BookingID:  booking.ID,
		}); err != nil {
			log.Error().Err(err).Msg("failed to send cancellation mail")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) ensureRoomBookable(ctx context.Context, roomID int64) error {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if !room.IsAvailable {
		return failure.Conflict("room is not open for booking") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) publishBookingEvent(ctx context.Context, event string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   model.ConfirmationNumber(booking.ID),
		Value: dto.NewBookingEvent(event, booking),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
	}
}

func parseStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(constant.StayDateFormat, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check-in date must use YYYY-MM-DD format") // nolint:wrapcheck
	}

	out, err := time.Parse(constant.StayDateFormat, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check-out date must use YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !in.Before(out) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	return in, out, nil
}

func roomLockKey(roomID int64) string {
	return fmt.Sprintf("room:%d", roomID)
}
