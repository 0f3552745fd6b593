// Package errors はライブラリ全体のエラーハンドリングと警告システムを提供します。
// LAPACK流のエラー報告（致命的な引数エラーと、回復可能な数値的退化）を
// 構造化されたエラー情報として表現します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("nalgebra-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、SingularMatrixWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	数値計算の警告型
//
// ===========================================================================

// SingularMatrixWarning は分解中に厳密なゼロピボットが検出された場合に発生する警告です。
// 分解自体は完了しており、Solve/Inverseの時点で失敗として報告されます。
type SingularMatrixWarning struct {
	Op   string
	Rows int
	Cols int
}

func (w *SingularMatrixWarning) Error() string {
	return fmt.Sprintf("%s: exact zero pivot in %dx%d matrix; Solve and Inverse will report failure", w.Op, w.Rows, w.Cols)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *SingularMatrixWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("rows", w.Rows).
		Int("cols", w.Cols).
		Str("type", "SingularMatrixWarning")
}

// NewSingularMatrixWarning は新しいSingularMatrixWarningを作成します。
func NewSingularMatrixWarning(op string, rows, cols int) *SingularMatrixWarning {
	return &SingularMatrixWarning{Op: op, Rows: rows, Cols: cols}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DimensionError は行列の次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("nalgebra: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、正方行列を要求する操作に長方行列を渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("nalgebra: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// LapackError はLAPACKルーチンが非ゼロの診断コードを返した場合のエラーです。
// 負のInfoは不正な引数を示し、プログラマエラーとして致命的に扱われます。
type LapackError struct {
	Routine string
	Info    int
}

func (e *LapackError) Error() string {
	if e.Info < 0 {
		return fmt.Sprintf("nalgebra: lapack %s: illegal value in argument %d", e.Routine, -e.Info)
	}
	return fmt.Sprintf("nalgebra: lapack %s: routine reported info=%d", e.Routine, e.Info)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *LapackError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("routine", e.Routine).
		Int("info", e.Info).
		Str("type", "LapackError")
}

// NewLapackError は新しいLapackErrorを作成し、スタックトレースを付与します。
func NewLapackError(routine string, info int) error {
	err := &LapackError{Routine: routine, Info: info}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	数値計算特有のエラー型
//
// ===========================================================================

// NumericalInstabilityError は入力データに非有限値が含まれる場合のエラーです。
// NaN、Infを検出します。LAPACKルーチンは非有限値を検査しないため、
// 呼び出し前の検出が唯一の防衛線です。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "lu.New"）
	Values    []float64 // 問題のある値（複素数の場合は実部）
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("nalgebra: non-finite values detected in %s. Values: [%s]", e.Operation, valStr)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空の行列が渡された場合のエラーです。
	ErrEmptyData = New("empty matrix")

	// ErrSingularMatrix は特異行列の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")

	// ErrBackendUnavailable は対象スカラー型のLAPACKバックエンドが
	// 組み込まれていない場合のエラーです。
	ErrBackendUnavailable = New("lapack backend unavailable for this scalar type")
)
