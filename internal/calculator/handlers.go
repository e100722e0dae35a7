package calculator

import (
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"jenkins-pipeline-demo/internal/handlers"
	"jenkins-pipeline-demo/internal/observability"
)

// DivisionByZeroMessage is the error body returned by /api/divide when b is 0.
const DivisionByZeroMessage = "Division by zero is not allowed"

var (
	errMissingOperand = errors.New("missing required parameter")
	errInvalidOperand = errors.New("invalid numeric parameter")
)

var tracer = otel.Tracer(instrumentationName)

var validate = newValidator()

// newValidator reports field errors under their query parameter names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("query")
	})
	return v
}

// HandleAdd handles GET /api/add?a=&b=
func HandleAdd(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, OpAddition, func(a, b float64) (float64, error) {
		return Add(a, b), nil
	})
}

// HandleSubtract handles GET /api/subtract?a=&b=
func HandleSubtract(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, OpSubtraction, func(a, b float64) (float64, error) {
		return Subtract(a, b), nil
	})
}

// HandleMultiply handles GET /api/multiply?a=&b=
func HandleMultiply(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, OpMultiplication, func(a, b float64) (float64, error) {
		return Multiply(a, b), nil
	})
}

// HandleDivide handles GET /api/divide?a=&b=. A zero divisor is rejected
// before Divide is called.
func HandleDivide(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, OpDivision, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return Divide(a, b)
	})
}

func handleBinaryOp(w http.ResponseWriter, r *http.Request, op string, compute func(float64, float64) (float64, error)) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator."+op,
		trace.WithAttributes(
			attribute.String("calculator.operation", op),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	fail := func(msg string, err error) {
		observability.RecordError(ctx, span, logger, inst.errors, op, msg, err, http.StatusBadRequest, w)
	}

	a, b, err := parseOperands(r)
	if err != nil {
		fail(err.Error(), err)
		return
	}

	span.SetAttributes(
		attribute.Float64("calculator.operand.a", a),
		attribute.Float64("calculator.operand.b", b),
	)

	start := time.Now()
	result, err := compute(a, b)
	elapsed := float64(time.Since(start).Nanoseconds()) / 1e6

	if errors.Is(err, ErrDivisionByZero) {
		fail(DivisionByZeroMessage, err)
		return
	}
	if err != nil {
		fail(err.Error(), err)
		return
	}

	inst.recordSuccess(ctx, op, elapsed, result)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", op),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, OperationResponse{
		Operation: op,
		Operand1:  a,
		Operand2:  b,
		Result:    result,
	})
}

// parseOperands reads and validates the a and b query parameters.
func parseOperands(r *http.Request) (float64, float64, error) {
	q := r.URL.Query()
	raw := operandsQuery{A: q.Get("a"), B: q.Get("b")}

	if err := validate.StructCtx(r.Context(), raw); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return 0, 0, errors.Mark(
				errors.Newf("%s: %s", errMissingOperand, verrs[0].Field()),
				errMissingOperand,
			)
		}
		return 0, 0, errors.Wrap(err, "validate operands")
	}

	a, err := parseOperand("a", raw.A)
	if err != nil {
		return 0, 0, err
	}
	b, err := parseOperand("b", raw.B)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// parseOperand accepts every form strconv.ParseFloat does, including NaN and
// [+-]Inf(inity). Out-of-range values such as 1e400 become ±Inf.
func parseOperand(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errors.Mark(
			errors.Newf("%s: %s", errInvalidOperand, name),
			errInvalidOperand,
		)
	}
	return v, nil
}
