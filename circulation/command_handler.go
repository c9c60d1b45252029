package circulation

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
	"github.com/AntonStoeckl/library-bookrecord-go/shell"
)

const (
	logMsgCommandHandled = "command handled"
	logMsgCommandFailed  = "command failed"
	logAttrCommandType   = "command_type"
	logAttrBookID        = "book_id"
	logAttrVersion       = "version"
	logAttrAttempts      = "attempts"
	logAttrError         = "error"
)

// CommandHandler runs the circulation use cases against a BookStore.
// Every command that changes a record is executed as Load -> Decide -> Save,
// retried with exponential backoff if the Save hits a concurrency conflict.
type CommandHandler struct {
	store        BookStore
	retryOptions []shell.RetryOption
	logger       bookstore.ContextualLogger
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// WithLogger sets the logger that receives one info record per handled command and one error record per failure.
// Retries are logged to the same logger.
func WithLogger(logger bookstore.ContextualLogger) Option {
	return func(h *CommandHandler) {
		h.logger = logger
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store BookStore, opts ...Option) CommandHandler {
	handler := CommandHandler{store: store}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// HandleCatalogBook stores a new, available book record.
// Returns bookstore.ErrBookAlreadyExists if the BookID is taken.
func (h CommandHandler) HandleCatalogBook(ctx context.Context, command CatalogBook) (HandlerResult, error) {
	var version bookstore.VersionUint

	meta, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var insertErr error
		version, insertErr = h.insert(retryCtx, command.BookID, DecideCatalogBook(command))

		return insertErr
	}, h.allRetryOptions()...)

	return h.finish(ctx, command.CommandType(), command.BookID, newHandlerResult(version, meta), err)
}

// HandleAddBorrower queues a borrower for the book.
func (h CommandHandler) HandleAddBorrower(ctx context.Context, command AddBorrower) (HandlerResult, error) {
	if command.BorrowerID == "" {
		return h.finish(ctx, command.CommandType(), command.BookID, HandlerResult{}, ErrEmptyBorrowerID)
	}

	result, err := h.modify(ctx, command.BookID, func(current book.Book) (book.Book, error) {
		return DecideAddBorrower(current, command)
	})

	return h.finish(ctx, command.CommandType(), command.BookID, result, err)
}

// HandleRemoveBorrower lets the current borrower return the book and reports who holds it next.
// Returns book.ErrNoPendingBorrowers, and saves nothing, if the book is available.
func (h CommandHandler) HandleRemoveBorrower(ctx context.Context, command RemoveBorrower) (ReturnResult, error) {
	var outcome ReturnOutcome

	result, err := h.modify(ctx, command.BookID, func(current book.Book) (book.Book, error) {
		next, decided, decideErr := DecideRemoveBorrower(current)
		outcome = decided

		return next, decideErr
	})

	result, err = h.finish(ctx, command.CommandType(), command.BookID, result, err)
	if err != nil {
		return ReturnResult{HandlerResult: result}, err
	}

	return ReturnResult{HandlerResult: result, ReturnOutcome: outcome}, nil
}

// HandleUpdateBookInfo corrects the catalog data of a book.
func (h CommandHandler) HandleUpdateBookInfo(ctx context.Context, command UpdateBookInfo) (HandlerResult, error) {
	result, err := h.modify(ctx, command.BookID, func(current book.Book) (book.Book, error) {
		return DecideUpdateBookInfo(current, command), nil
	})

	return h.finish(ctx, command.CommandType(), command.BookID, result, err)
}

// Book loads the current record of a book together with its stored version.
func (h CommandHandler) Book(ctx context.Context, bookID uuid.UUID) (book.Book, bookstore.VersionUint, error) {
	storedBook, version, err := h.store.Load(ctx, bookID.String())
	if err != nil {
		return book.Book{}, 0, err
	}

	b, err := shell.BookFrom(storedBook)
	if err != nil {
		return book.Book{}, 0, err
	}

	return b, version, nil
}

// modify runs one retried Load -> Decide -> Save cycle.
// A decide error ends the cycle without saving.
func (h CommandHandler) modify(
	ctx context.Context,
	bookID uuid.UUID,
	decide func(current book.Book) (book.Book, error),
) (HandlerResult, error) {

	var version bookstore.VersionUint

	meta, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		// Load phase
		current, loadedVersion, loadErr := h.Book(retryCtx, bookID)
		if loadErr != nil {
			return loadErr
		}

		// Decide phase - delegate to pure function
		next, decideErr := decide(current)
		if decideErr != nil {
			return decideErr
		}

		// Save phase
		storedBook, mappingErr := shell.StoredBookFrom(bookID, next)
		if mappingErr != nil {
			return mappingErr
		}

		savedVersion, saveErr := h.store.Save(retryCtx, storedBook, loadedVersion)
		if saveErr != nil {
			return saveErr
		}

		version = savedVersion

		return nil
	}, h.allRetryOptions()...)

	return newHandlerResult(version, meta), err
}

func (h CommandHandler) insert(ctx context.Context, bookID uuid.UUID, b book.Book) (bookstore.VersionUint, error) {
	storedBook, err := shell.StoredBookFrom(bookID, b)
	if err != nil {
		return 0, err
	}

	return h.store.Insert(ctx, storedBook)
}

func (h CommandHandler) allRetryOptions() []shell.RetryOption {
	if h.logger == nil {
		return h.retryOptions
	}

	return append([]shell.RetryOption{shell.WithRetryLogger(h.logger)}, h.retryOptions...)
}

// finish logs the outcome of a command and passes result and error through.
func (h CommandHandler) finish(
	ctx context.Context,
	commandType string,
	bookID uuid.UUID,
	result HandlerResult,
	err error,
) (HandlerResult, error) {

	if h.logger == nil {
		return result, err
	}

	if err != nil {
		h.logger.ErrorContext(
			ctx,
			logMsgCommandFailed,
			logAttrCommandType, commandType,
			logAttrBookID, bookID.String(),
			logAttrAttempts, result.RetryAttempts,
			logAttrError, err.Error(),
		)

		return result, err
	}

	h.logger.InfoContext(
		ctx,
		logMsgCommandHandled,
		logAttrCommandType, commandType,
		logAttrBookID, bookID.String(),
		logAttrVersion, result.Version,
		logAttrAttempts, result.RetryAttempts,
	)

	return result, nil
}
