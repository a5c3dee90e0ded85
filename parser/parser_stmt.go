package parser

import "github.com/ashgrove/lt/lexer"

// parseStatement dispatches on the leading token of a statement. Every
// parse* helper here is entered with CurrToken on the statement's first
// token and returns with CurrToken on the statement's last consumed
// token, so Parse()'s loop can advance cleanly into the next statement.
func (par *Parser) parseStatement() Stmt {
	switch par.CurrToken.Type {
	case lexer.LET:
		return par.parseLetStatement()
	case lexer.PRINT:
		return par.parsePrintStatement()
	case lexer.IF:
		return par.parseIfStatement()
	case lexer.WHILE:
		return par.parseWhileStatement()
	case lexer.FOR:
		return par.parseForStatement()
	case lexer.FUNC:
		return par.parseFuncStatement()
	case lexer.RETURN:
		return par.parseReturnStatement()
	case lexer.LBRACE:
		return par.parseBlockStatement()
	case lexer.IDENT:
		if par.nextIs(lexer.ASSIGN) {
			return par.parseAssignStatement()
		}
		return par.parseExprStatement()
	default:
		return par.parseExprStatement()
	}
}

// parseLetStatement parses `let IDENT ('=' expr)? ';'`. Omitting the
// initializer binds the name to Null.
func (par *Parser) parseLetStatement() Stmt {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.IDENT) {
		return nil
	}
	name := &Identifier{base{par.CurrToken}, par.CurrToken.Literal}

	var value Expr = &NullLit{base{par.CurrToken}}
	if par.nextIs(lexer.ASSIGN) {
		par.advance()
		par.advance()
		value = par.parseExpr()
	}
	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	return &LetStmt{base{tok}, name, value}
}

// parseAssignStatement parses `IDENT '=' expr ';'`. Assignment is a
// statement form, not a general expression.
func (par *Parser) parseAssignStatement() Stmt {
	tok := par.CurrToken
	name := &Identifier{base{tok}, tok.Literal}
	par.advance() // consume '='
	par.advance() // move to expression start
	val := par.parseExpr()
	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	return &AssignStmt{base{tok}, name, val}
}

func (par *Parser) parsePrintStatement() Stmt {
	tok := par.CurrToken
	par.advance()
	val := par.parseExpr()
	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	return &PrintStmt{base{tok}, val}
}

func (par *Parser) parseExprStatement() Stmt {
	tok := par.CurrToken
	val := par.parseExpr()
	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	return &ExprStmt{base{tok}, val}
}

// parseBlockStatement repeatedly parses statements until `}`. Entered
// with CurrToken on `{`; returns with CurrToken on `}`.
func (par *Parser) parseBlockStatement() *BlockStmt {
	tok := par.CurrToken
	stmts := make([]Stmt, 0)
	par.advance()
	for !par.currIs(lexer.RBRACE) && !par.currIs(lexer.EOF) {
		stmt := par.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		par.advance()
	}
	if !par.currIs(lexer.RBRACE) {
		par.addError("expected }, got %s", par.CurrToken.Type)
	}
	return &BlockStmt{base{tok}, stmts}
}

// parseBlockOrStatement parses a `{ ... }` block if the current token is
// `{`, otherwise a single statement — used for `if`'s then/else arms.
func (par *Parser) parseBlockOrStatement() Stmt {
	if par.currIs(lexer.LBRACE) {
		return par.parseBlockStatement()
	}
	return par.parseStatement()
}

func (par *Parser) parseIfStatement() Stmt {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	par.advance()
	cond := par.parseExpr()
	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}
	par.advance()
	thenStmt := par.parseBlockOrStatement()

	var elseStmt Stmt
	if par.nextIs(lexer.ELSE) {
		par.advance() // on 'else'
		par.advance() // move to else-arm start
		elseStmt = par.parseBlockOrStatement()
	}
	return &IfStmt{base{tok}, cond, thenStmt, elseStmt}
}

// parseWhileStatement parses `while '(' expr ')' block`: the body is
// required to be a brace-delimited block.
func (par *Parser) parseWhileStatement() Stmt {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	par.advance()
	cond := par.parseExpr()
	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LBRACE) {
		return nil
	}
	body := par.parseBlockStatement()
	return &WhileStmt{base{tok}, cond, body}
}

// parseForStatement desugars `for (init cond; incr) body` into
// `Block[init, While(cond, Block[body..., incr])]` at parse time — no
// dedicated For AST node is needed.
func (par *Parser) parseForStatement() Stmt {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	par.advance()
	initStmt := par.parseStatement() // consumes its own terminating ';'
	par.advance()

	cond := par.parseExpr()
	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	par.advance()

	incrStmt := par.parseForIncrement()
	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}
	par.advance()
	body := par.parseBlockOrStatement()

	var bodyStmts []Stmt
	if blk, ok := body.(*BlockStmt); ok {
		bodyStmts = append(append([]Stmt{}, blk.Statements...), incrStmt)
	} else {
		bodyStmts = []Stmt{body, incrStmt}
	}
	whileStmt := &WhileStmt{base{tok}, cond, &BlockStmt{base{tok}, bodyStmts}}
	return &BlockStmt{base{tok}, []Stmt{initStmt, whileStmt}}
}

// parseForIncrement parses the for-header's increment clause, which is
// delimited by `)` rather than `;` so it never consumes a terminator.
func (par *Parser) parseForIncrement() Stmt {
	tok := par.CurrToken
	if par.currIs(lexer.IDENT) && par.nextIs(lexer.ASSIGN) {
		name := &Identifier{base{tok}, tok.Literal}
		par.advance()
		par.advance()
		val := par.parseExpr()
		return &AssignStmt{base{tok}, name, val}
	}
	val := par.parseExpr()
	return &ExprStmt{base{tok}, val}
}

func (par *Parser) parseReturnStatement() Stmt {
	tok := par.CurrToken
	par.advance()
	val := par.parseExpr()
	if !par.expectAdvance(lexer.SEMICOLON) {
		return nil
	}
	return &ReturnStmt{base{tok}, val}
}

// parseFuncStatement parses a function declaration into a LetStmt whose
// value is a FuncLit, per the grammar's "produces a Declaration" rule.
func (par *Parser) parseFuncStatement() Stmt {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.IDENT) {
		return nil
	}
	name := &Identifier{base{par.CurrToken}, par.CurrToken.Literal}
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	params := par.parseParams()
	if !par.expectAdvance(lexer.LBRACE) {
		return nil
	}
	body := par.parseBlockStatement()
	fn := &FuncLit{base{tok}, params, body}
	return &LetStmt{base{tok}, name, fn}
}

// parseParams parses a comma-separated, possibly empty parameter list.
// Entered with CurrToken on `(`; returns with CurrToken on `)`.
func (par *Parser) parseParams() []*Identifier {
	params := make([]*Identifier, 0)
	if par.nextIs(lexer.RPAREN) {
		par.advance()
		return params
	}
	par.advance()
	params = append(params, &Identifier{base{par.CurrToken}, par.CurrToken.Literal})
	for par.nextIs(lexer.COMMA) {
		par.advance()
		par.advance()
		params = append(params, &Identifier{base{par.CurrToken}, par.CurrToken.Literal})
	}
	if !par.expectAdvance(lexer.RPAREN) {
		return params
	}
	return params
}
