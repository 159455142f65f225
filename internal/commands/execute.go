package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add        func(AddArgs) (Result, error)
	Done       func(DoneArgs) (Result, error)
	Delete     func(DeleteArgs) (Result, error)
	Planner    func(PlannerArgs) (Result, error)
	Background func(BackgroundArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypePlanner:
		if handlers.Planner == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "planner handler not configured"}
		}
		return handlers.Planner(*cmd.Planner)
	case TypeBackground:
		if handlers.Background == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "background handler not configured"}
		}
		return handlers.Background(*cmd.Background)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
